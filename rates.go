package expenses

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Rate describes one supported currency: its code, a human-readable label,
// and its value expressed in units of the currency per one base unit.
type Rate struct {
	Code  string
	Label string
	Rate  decimal.Decimal // always positive
}

// Rates is the currency table. It is injected into a Ledger at construction
// so tests can substitute fixed rates, and a live-rate provider could
// replace the static table without touching wallet or ledger logic.
type Rates struct {
	index map[string]Rate
}

// NewRates builds a currency table from the given rates.
func NewRates(rates ...Rate) *Rates {
	t := &Rates{index: make(map[string]Rate, len(rates))}
	for _, r := range rates {
		t.index[r.Code] = r
	}
	return t
}

// DefaultRates returns the built-in table of five currencies, relative to
// USD as the base unit.
func DefaultRates() *Rates {
	return NewRates(
		Rate{Code: "USD", Label: "United States Dollar", Rate: decimal.NewFromFloat(1.0)},
		Rate{Code: "EUR", Label: "Euro", Rate: decimal.NewFromFloat(0.92)},
		Rate{Code: "GBP", Label: "British Pound", Rate: decimal.NewFromFloat(0.81)},
		Rate{Code: "JPY", Label: "Japanese Yen", Rate: decimal.NewFromFloat(140.0)},
		Rate{Code: "AUD", Label: "Australian Dollar", Rate: decimal.NewFromFloat(1.5)},
	)
}

// Supports reports whether code is in the table.
func (t *Rates) Supports(code string) bool {
	_, ok := t.index[code]
	return ok
}

// Convert converts an amount between two supported currencies, going
// through the base unit. Converting a currency to itself returns the amount
// unchanged, with no rounding drift.
func (t *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := t.index[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, from)
	}
	toRate, ok := t.index[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, to)
	}
	if from == to {
		return amount, nil
	}
	return amount.Div(fromRate.Rate).Mul(toRate.Rate), nil
}

// Currencies returns the supported rates sorted by code, for display.
func (t *Rates) Currencies() []Rate {
	rates := make([]Rate, 0, len(t.index))
	for _, r := range t.index {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Code < rates[j].Code })
	return rates
}
