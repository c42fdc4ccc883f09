package pricing

import "github.com/shopspring/decimal"

// CartSummary aggregates a cart's resolved lines in the buyer's display currency.
// It is recomputed on every read: the same persisted cart always summarizes to
// the same figures.
type CartSummary struct {
	Currency          string          `json:"currency"`
	Groups            []CategoryGroup `json:"groups"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TotalShippingCost decimal.Decimal `json:"total_shipping_cost"`
	TotalDiscount     decimal.Decimal `json:"total_discount"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
}

// CategoryGroup buckets lines by display category. Grouping is purely for the
// storefront UI and has no effect on the totals.
type CategoryGroup struct {
	Category string             `json:"category"`
	Items    []ResolvedLineItem `json:"items"`
}

// Summarize converts every resolved line into the display currency and reduces
// them into subtotal, shipping, discount, tax, and grand total.
func Summarize(lines []ResolvedLineItem, conv *Converter, tax FlatTax, displayCurrency string) (CartSummary, error) {
	if displayCurrency == "" {
		displayCurrency = conv.Base()
	}

	summary := CartSummary{
		Currency:          displayCurrency,
		Subtotal:          decimal.Zero,
		TotalShippingCost: decimal.Zero,
		TotalDiscount:     decimal.Zero,
	}

	groupIndex := map[string]int{}
	for _, line := range lines {
		converted, err := convertLine(line, conv, displayCurrency)
		if err != nil {
			return CartSummary{}, err
		}

		summary.Subtotal = summary.Subtotal.Add(converted.LineTotal)
		summary.TotalShippingCost = summary.TotalShippingCost.Add(converted.ShippingCost)
		summary.TotalDiscount = summary.TotalDiscount.Add(converted.Discount)

		idx, ok := groupIndex[converted.Category]
		if !ok {
			idx = len(summary.Groups)
			groupIndex[converted.Category] = idx
			summary.Groups = append(summary.Groups, CategoryGroup{Category: converted.Category})
		}
		summary.Groups[idx].Items = append(summary.Groups[idx].Items, converted)
	}

	summary.Tax = tax.Tax(summary.Subtotal)
	summary.Total = summary.Subtotal.Add(summary.TotalShippingCost).Add(summary.Tax)
	return summary, nil
}

func convertLine(line ResolvedLineItem, conv *Converter, currency string) (ResolvedLineItem, error) {
	if line.Currency == currency {
		return line, nil
	}
	var err error
	if line.ListPrice, err = conv.Convert(line.ListPrice, line.Currency, currency); err != nil {
		return ResolvedLineItem{}, err
	}
	if line.UnitPrice, err = conv.Convert(line.UnitPrice, line.Currency, currency); err != nil {
		return ResolvedLineItem{}, err
	}
	if line.LineTotal, err = conv.Convert(line.LineTotal, line.Currency, currency); err != nil {
		return ResolvedLineItem{}, err
	}
	if line.Discount, err = conv.Convert(line.Discount, line.Currency, currency); err != nil {
		return ResolvedLineItem{}, err
	}
	if line.ShippingCost, err = conv.Convert(line.ShippingCost, line.Currency, currency); err != nil {
		return ResolvedLineItem{}, err
	}
	line.Currency = currency
	return line, nil
}

// Rounded returns a presentation copy with every monetary field rounded to two
// decimals. Internal arithmetic stays exact; rounding happens only here.
func (s CartSummary) Rounded() CartSummary {
	out := s
	out.Subtotal = s.Subtotal.Round(2)
	out.TotalShippingCost = s.TotalShippingCost.Round(2)
	out.TotalDiscount = s.TotalDiscount.Round(2)
	out.Tax = s.Tax.Round(2)
	out.Total = s.Total.Round(2)
	out.Groups = make([]CategoryGroup, len(s.Groups))
	for i, g := range s.Groups {
		items := make([]ResolvedLineItem, len(g.Items))
		for j, item := range g.Items {
			item.ListPrice = item.ListPrice.Round(2)
			item.UnitPrice = item.UnitPrice.Round(2)
			item.LineTotal = item.LineTotal.Round(2)
			item.Discount = item.Discount.Round(2)
			item.ShippingCost = item.ShippingCost.Round(2)
			items[j] = item
		}
		out.Groups[i] = CategoryGroup{Category: g.Category, Items: items}
	}
	return out
}
