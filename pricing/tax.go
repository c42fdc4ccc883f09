package pricing

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// FlatTax computes tax as a flat fraction of the subtotal.
type FlatTax struct {
	Rate decimal.Decimal
}

// TaxFromEnv reads TAX_RATE (e.g. "0.05" for 5%); missing or malformed means no tax.
func TaxFromEnv() FlatTax {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return FlatTax{Rate: decimal.Zero}
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("⚠️ Ignoring malformed TAX_RATE %q: %v", raw, err)
		return FlatTax{Rate: decimal.Zero}
	}
	return FlatTax{Rate: rate}
}

func (t FlatTax) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(t.Rate)
}
