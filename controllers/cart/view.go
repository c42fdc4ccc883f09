package cartControllers

import (
	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"gorm.io/gorm"
)

// View is what every cart endpoint returns: the resolved lines plus the summary
// in the buyer's display currency.
type View struct {
	BuyerID string                     `json:"buyer_id"`
	Items   []pricing.ResolvedLineItem `json:"items"`
	Summary pricing.CartSummary        `json:"summary"`
}

// ResolveItems prices every cart line against the current catalog. Products are
// loaded in one batch query, not one query per line.
func ResolveItems(db *gorm.DB, cart models.Cart) ([]pricing.ResolvedLineItem, error) {
	if len(cart.Items) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(cart.Items))
	seen := map[uint]bool{}
	for _, item := range cart.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]pricing.ResolvedLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		line, err := pricing.Resolve(item, product)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// BuildView resolves and summarizes the cart in the requested display currency.
func BuildView(db *gorm.DB, cart models.Cart, conv *pricing.Converter, tax pricing.FlatTax, currency string) (View, error) {
	lines, err := ResolveItems(db, cart)
	if err != nil {
		return View{}, err
	}
	summary, err := pricing.Summarize(lines, conv, tax, currency)
	if err != nil {
		return View{}, err
	}
	return View{
		BuyerID: cart.BuyerID,
		Items:   lines,
		Summary: summary.Rounded(),
	}, nil
}
