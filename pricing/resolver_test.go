package pricing

import (
	"testing"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestResolve_SalePriceApplies(t *testing.T) {
	product := models.Product{ID: 1, SellerID: "seller-1", EName: "Lamp", Price: dec("100"), SalePrice: decPtr("80"), Currency: "USD"}

	line, err := Resolve(models.CartItem{ProductID: 1, Quantity: 2}, product)
	require.NoError(t, err)

	assert.True(t, line.UnitPrice.Equal(dec("80")), "unit price should be the sale price")
	assert.True(t, line.LineTotal.Equal(dec("160")))
	assert.True(t, line.Discount.Equal(dec("40")), "discount is (list - unit) * qty")
}

func TestResolve_InvalidSalePriceIgnored(t *testing.T) {
	// A "sale" price above the list price is not a sale
	product := models.Product{ID: 1, Price: dec("100"), SalePrice: decPtr("120"), Currency: "USD"}

	line, err := Resolve(models.CartItem{ProductID: 1, Quantity: 1}, product)
	require.NoError(t, err)

	assert.True(t, line.UnitPrice.Equal(dec("100")))
	assert.True(t, line.Discount.IsZero())
}

func TestResolve_EqualSalePriceIgnored(t *testing.T) {
	product := models.Product{ID: 1, Price: dec("100"), SalePrice: decPtr("100"), Currency: "USD"}

	line, err := Resolve(models.CartItem{ProductID: 1, Quantity: 1}, product)
	require.NoError(t, err)

	assert.True(t, line.UnitPrice.Equal(dec("100")))
}

func TestResolve_NoSalePrice(t *testing.T) {
	product := models.Product{ID: 1, Price: dec("49.99"), Currency: "USD"}

	line, err := Resolve(models.CartItem{ProductID: 1, Quantity: 3}, product)
	require.NoError(t, err)

	assert.True(t, line.UnitPrice.Equal(dec("49.99")))
	assert.True(t, line.LineTotal.Equal(dec("149.97")))
}

func TestResolve_InvalidQuantity(t *testing.T) {
	product := models.Product{ID: 1, Price: dec("10"), Currency: "USD"}

	_, err := Resolve(models.CartItem{ProductID: 1, Quantity: 0}, product)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Resolve(models.CartItem{ProductID: 1, Quantity: -2}, product)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestResolve_ShippingChargedPerLine(t *testing.T) {
	product := models.Product{ID: 1, Price: dec("10"), ShippingCost: dec("5"), Currency: "USD"}

	line, err := Resolve(models.CartItem{ProductID: 1, Quantity: 4}, product)
	require.NoError(t, err)

	// One shipping charge per line, not per unit
	assert.True(t, line.ShippingCost.Equal(dec("5")))
}
