package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID      string `gorm:"index;not null" json:"seller_id"`
	EName         string `gorm:"not null" json:"e_name"` // English Name
	ARName        string `json:"ar_name"`                // Arabic Name
	EDescription  string `json:"e_description"`
	ARDescription string `json:"ar_description"`
	// Price is the list price; SalePrice applies only when set and lower.
	Price        decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	SalePrice    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price,omitempty"`
	ShippingCost decimal.Decimal  `gorm:"type:decimal(12,2)" json:"shipping_cost"`
	Currency     string           `gorm:"type:VARCHAR(3);default:'USD'" json:"currency"`
	Category     string           `gorm:"index" json:"category"`
	Image        string           `json:"image"`
	Stock        int              `json:"stock"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}
