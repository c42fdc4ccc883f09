package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	// Canonical buyer-facing order statuses. "delivered" is accepted on input as
	// an alias of completed; refunds are tracked on PaymentStatus, not here.
	OrderStatusProcessing OrderStatus = "processing" // Initial state, seller is fulfilling
	OrderStatusOnHold     OrderStatus = "on-hold"    // Paused, can resume to processing
	OrderStatusCompleted  OrderStatus = "completed"  // Terminal: delivered to the buyer
	OrderStatusCanceled   OrderStatus = "canceled"   // Terminal: remains queryable

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to buyer
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// OrderNumber is unique and strictly increasing per seller, not globally.
	OrderNumber int64  `gorm:"not null;uniqueIndex:idx_seller_order_number" json:"order_number"`
	SellerID    string `gorm:"not null;uniqueIndex:idx_seller_order_number" json:"seller_id"`
	// BuyerID goes null if the buyer account is deleted; the order itself stays.
	BuyerID string `gorm:"index" json:"buyer_id"`
	// CheckoutRef groups the sibling orders created by one checkout action.
	CheckoutRef string      `gorm:"index" json:"checkout_ref"`
	Products    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`

	// Totals are frozen at creation from the snapshotted line items and are only
	// ever recomputed locally (line-item removal), never from live catalog data.
	Subtotal          decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	TotalShippingCost decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_shipping_cost"`
	Total             decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Currency          string          `gorm:"type:VARCHAR(3)" json:"currency"`

	Status        OrderStatus   `gorm:"type:VARCHAR(12);default:'processing'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(12);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "card", "cod"

	ShippingAddress string `gorm:"not null" json:"shipping_address"`
	Phone           string `json:"phone"`
	Note            string `json:"note,omitempty"`

	Timeline  []TimelineEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"timeline"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItem is a frozen copy taken at checkout; prices never change afterward even
// if the underlying product changes.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"index" json:"-"`
	ProductID    uint            `json:"product_id"`
	Title        string          `json:"title"` // snapshotted product name
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping_cost"`
	Currency     string          `gorm:"type:VARCHAR(3)" json:"currency"`
	Quantity     int             `json:"quantity"`
}

// TimelineEntry is append-only: entries are never mutated or removed once written.
type TimelineEntry struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OrderID   uint        `gorm:"index" json:"-"`
	Status    OrderStatus `gorm:"type:VARCHAR(12)" json:"status"`
	Note      string      `json:"note,omitempty"`
	UpdatedBy string      `json:"updated_by"` // actor reference
	CreatedAt time.Time   `json:"created_at"`
}
