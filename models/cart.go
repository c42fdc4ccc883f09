package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	BuyerID   string     `gorm:"uniqueIndex" json:"buyer_id"`                   // Enforces ONE cart per buyer
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CartID    uint   `gorm:"index" json:"-"`
	ProductID uint   `json:"product_id"`
	SellerID  string `gorm:"index" json:"seller_id"` // copied from the product at add-time
	Quantity  int    `json:"quantity"`
	// Variant selection. Part of line-item identity together with ProductID:
	// the same product with a different selection is a distinct line.
	SelectedColor *string   `json:"selected_color,omitempty"`
	SelectedSize  *string   `json:"selected_size,omitempty"`
	CustomOptions OptionMap `gorm:"type:text" json:"custom_options,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// SameSelection reports whether two cart lines reference the same product with a
// structurally equal variant selection, i.e. whether an add should merge into this line.
func (i CartItem) SameSelection(other CartItem) bool {
	return i.ProductID == other.ProductID &&
		equalStringPtr(i.SelectedColor, other.SelectedColor) &&
		equalStringPtr(i.SelectedSize, other.SelectedSize) &&
		i.CustomOptions.Equal(other.CustomOptions)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// OptionMap stores free-form option key/values as a JSON text column.
type OptionMap map[string]string

func (m OptionMap) Equal(other OptionMap) bool {
	return maps.Equal(m, other)
}

func (m OptionMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *OptionMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into OptionMap", src)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	if !json.Valid(data) {
		return errors.New("invalid JSON in custom options column")
	}
	return json.Unmarshal(data, m)
}
