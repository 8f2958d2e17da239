package models

import (
	"time"

	"gorm.io/gorm"
)

// Sweet is a catalog item.
type Sweet struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"index;not null" json:"name"`
	Category    string         `gorm:"index;not null" json:"category"`
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	// Stock is exposed as "quantity" on the wire: storefront clients read
	// it as units available for purchase.
	Stock       int            `gorm:"not null;default:0" json:"quantity"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Image       string         `gorm:"type:varchar(500)" json:"image,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName names the table.
func (Sweet) TableName() string {
	return "sweets"
}
