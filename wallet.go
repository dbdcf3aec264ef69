package expenses

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Wallet is a named balance held in one currency, together with the ordered
// log of expenses recorded against it.
//
// The balance always equals the initial balance minus the sum of all
// recorded expense amounts.
type Wallet struct {
	name     string
	currency string
	balance  decimal.Decimal
	expenses []Expense
}

func newWallet(name, currency string, balance decimal.Decimal) *Wallet {
	return &Wallet{name: name, currency: currency, balance: balance}
}

func (w *Wallet) Name() string             { return w.name }
func (w *Wallet) Currency() string         { return w.currency }
func (w *Wallet) Balance() decimal.Decimal { return w.balance }

// Expenses returns a copy of the expense log, in recording order.
func (w *Wallet) Expenses() []Expense { return slices.Clone(w.expenses) }

// RecordExpense validates and appends an expense, subtracting its amount
// from the balance. A blank category defaults to DefaultCategory. There is
// no overdraft check: an expense larger than the balance drives it
// negative.
func (w *Wallet) RecordExpense(description string, amount decimal.Decimal, category string) (Expense, error) {
	if strings.TrimSpace(description) == "" {
		return Expense{}, fmt.Errorf("%w: expense description must not be blank", ErrInvalidDescription)
	}
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: expense amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if category == "" {
		category = DefaultCategory
	}
	e := Expense{Description: description, Amount: amount, Category: category}
	w.expenses = append(w.expenses, e)
	w.balance = w.balance.Sub(amount)
	return e, nil
}

// TotalSpent returns the exact sum of all recorded expense amounts.
func (w *Wallet) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range w.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// BalanceIn converts the wallet's balance into the target currency.
func (w *Wallet) BalanceIn(rates *Rates, target string) (decimal.Decimal, error) {
	return rates.Convert(w.balance, w.currency, target)
}
