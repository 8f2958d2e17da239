package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one line of a recorded order. Name, variant and prices are
// snapshots taken at checkout time so later catalog edits do not rewrite
// order history.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	OrderID      uint           `gorm:"index;not null" json:"order_id"`
	SweetID      uint           `gorm:"index;not null" json:"sweet_id"`
	SweetName    string         `gorm:"not null" json:"sweet_name"`
	VariantLabel string         `gorm:"type:varchar(20);not null" json:"selected_quantity"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	TotalPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName names the table.
func (OrderItem) TableName() string {
	return "order_items"
}
