package pricing

import (
	"errors"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ResolvedLineItem is a cart line priced against the current catalog snapshot.
// It is ephemeral: computed on every read, never persisted on the cart.
type ResolvedLineItem struct {
	ItemID    uint   `json:"item_id,omitempty"`
	ProductID uint   `json:"product_id"`
	SellerID  string `json:"seller_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`

	ListPrice decimal.Decimal `json:"list_price"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	// Discount is (list - unit) * quantity; zero when no sale price applied.
	Discount decimal.Decimal `json:"discount"`
	// ShippingCost is charged once per line, not per unit.
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Currency     string          `json:"currency"`

	SelectedColor *string          `json:"selected_color,omitempty"`
	SelectedSize  *string          `json:"selected_size,omitempty"`
	CustomOptions models.OptionMap `json:"custom_options,omitempty"`
}

// Resolve prices a cart line against a product snapshot. The sale price wins only
// when present and strictly lower than the list price; an "invalid sale" that is
// equal or higher is ignored. No rounding happens here; amounts stay exact until
// presentation.
func Resolve(item models.CartItem, product models.Product) (ResolvedLineItem, error) {
	if item.Quantity < 1 {
		return ResolvedLineItem{}, ErrInvalidQuantity
	}

	unit := product.Price
	if product.SalePrice != nil && product.SalePrice.LessThan(product.Price) {
		unit = *product.SalePrice
	}

	qty := decimal.NewFromInt(int64(item.Quantity))
	return ResolvedLineItem{
		ItemID:        item.ID,
		ProductID:     product.ID,
		SellerID:      product.SellerID,
		Title:         product.EName,
		Category:      product.Category,
		Quantity:      item.Quantity,
		ListPrice:     product.Price,
		UnitPrice:     unit,
		LineTotal:     unit.Mul(qty),
		Discount:      product.Price.Sub(unit).Mul(qty),
		ShippingCost:  product.ShippingCost,
		Currency:      product.Currency,
		SelectedColor: item.SelectedColor,
		SelectedSize:  item.SelectedSize,
		CustomOptions: item.CustomOptions,
	}, nil
}
