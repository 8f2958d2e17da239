package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is the server-side record of a completed checkout.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	SessionID       string         `gorm:"index;not null" json:"-"`
	Status          string         `gorm:"index;not null" json:"status"`
	Currency        string         `gorm:"not null" json:"currency"`
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	Tax             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CustomerName    string         `gorm:"type:varchar(200);not null" json:"customer_name"`
	Email           string         `gorm:"index;not null" json:"email"`
	PhoneNumber     string         `gorm:"type:varchar(20);not null" json:"phone_number"`
	DeliveryAddress string         `gorm:"type:text;not null" json:"delivery_address"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
	// RemoteOrderID is the upstream order API's identifier when the
	// submission succeeded; empty for locally confirmed orders.
	RemoteOrderID   string         `gorm:"type:varchar(100)" json:"remote_order_id,omitempty"`
	PaymentRef      string         `gorm:"type:varchar(100)" json:"payment_ref,omitempty"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName names the table.
func (Order) TableName() string {
	return "orders"
}
