package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("no conversion rate for currency")

// Converter converts amounts between currencies using a rate table quoted
// against a base currency (units of currency per 1 unit of base).
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

func NewConverter(base string, rates map[string]decimal.Decimal) *Converter {
	normalized := map[string]decimal.Decimal{strings.ToUpper(base): decimal.NewFromInt(1)}
	for code, rate := range rates {
		normalized[strings.ToUpper(code)] = rate
	}
	return &Converter{base: strings.ToUpper(base), rates: normalized}
}

// ConverterFromEnv builds a converter from BASE_CURRENCY and CURRENCY_RATES
// (JSON object of code -> rate, e.g. {"EUR":"0.92","AED":"3.67"}).
func ConverterFromEnv() *Converter {
	base := os.Getenv("BASE_CURRENCY")
	if base == "" {
		base = "USD"
	}
	rates := map[string]decimal.Decimal{}
	if raw := os.Getenv("CURRENCY_RATES"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &rates); err != nil {
			log.Printf("⚠️ Ignoring malformed CURRENCY_RATES: %v", err)
			rates = map[string]decimal.Decimal{}
		}
	}
	return NewConverter(base, rates)
}

func (c *Converter) Base() string { return c.base }

// Convert translates an amount between two known currencies via the base rate.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return amount, nil
	}
	fromRate, ok := c.rates[from]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w %q", ErrUnknownCurrency, from)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w %q", ErrUnknownCurrency, to)
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
