package expenses

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value: an exact decimal amount tagged with a currency.
// Bookkeeping arithmetic stays on decimal.Decimal; Money exists so reports
// format amounts with the conventions of their currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from an exact decimal amount and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Amount() decimal.Decimal     { return m.value }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n decimal.Decimal) Money { return Money{value: m.value.Add(n), cur: m.cur} }
func (m Money) Sub(n decimal.Decimal) Money { return Money{value: m.value.Sub(n), cur: m.cur} }

// String formats the amount with the currency's grapheme and fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
