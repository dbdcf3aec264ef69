package expenses

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger is the full collection of wallets and the unit of persistence.
//
// Wallets keep their creation order for listing. Names are unique, matched
// case-sensitively and exactly.
type Ledger struct {
	rates   *Rates
	wallets []*Wallet
	index   map[string]*Wallet // index wallets by name
}

// NewLedger creates an empty ledger using the given currency table.
func NewLedger(rates *Rates) *Ledger {
	return &Ledger{
		rates:   rates,
		wallets: make([]*Wallet, 0),
		index:   make(map[string]*Wallet),
	}
}

// Rates returns the currency table the ledger was built with.
func (l *Ledger) Rates() *Rates { return l.rates }

// Len returns the number of wallets.
func (l *Ledger) Len() int { return len(l.wallets) }

// CreateWallet constructs a wallet and inserts it. The name must be unused,
// the currency must be in the table, and the initial balance must not be
// negative (zero is allowed). All checks run before any mutation.
func (l *Ledger) CreateWallet(name, currency string, initial decimal.Decimal) (*Wallet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("wallet name must not be blank")
	}
	if _, ok := l.index[name]; ok {
		return nil, fmt.Errorf("%w: a wallet named %q already exists", ErrDuplicateWallet, name)
	}
	if !l.rates.Supports(currency) {
		return nil, fmt.Errorf("%w: %q is not in the currency table", ErrInvalidCurrency, currency)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative, got %s", ErrInvalidAmount, initial)
	}
	w := newWallet(name, currency, initial)
	l.wallets = append(l.wallets, w)
	l.index[name] = w
	return w, nil
}

// Wallet returns the wallet with this exact name.
func (l *Ledger) Wallet(name string) (*Wallet, error) {
	w, ok := l.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	return w, nil
}

// AddExpense records an expense against the named wallet.
func (l *Ledger) AddExpense(walletName, description string, amount decimal.Decimal, category string) (Expense, error) {
	w, err := l.Wallet(walletName)
	if err != nil {
		return Expense{}, err
	}
	return w.RecordExpense(description, amount, category)
}

// Wallets iterates over all wallets in creation order.
func (l *Ledger) Wallets() iter.Seq2[int, *Wallet] {
	return func(yield func(int, *Wallet) bool) {
		for i, w := range l.wallets {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Summary is one line of the list-wallets view.
type Summary struct {
	Name     string
	Currency string
	Balance  decimal.Decimal
	Expenses int
}

// Summaries returns a snapshot of all wallets in creation order. It
// reflects the ledger state at call time and does not update afterwards.
func (l *Ledger) Summaries() []Summary {
	summaries := make([]Summary, 0, len(l.wallets))
	for _, w := range l.wallets {
		summaries = append(summaries, Summary{
			Name:     w.name,
			Currency: w.currency,
			Balance:  w.balance,
			Expenses: len(w.expenses),
		})
	}
	return summaries
}

// insert adds a wallet decoded from a persisted document, bypassing the
// creation checks: a persisted balance already includes past spending and
// may legitimately be negative, and its currency is only checked against
// the table when a conversion is requested.
func (l *Ledger) insert(w *Wallet) error {
	if _, ok := l.index[w.name]; ok {
		return fmt.Errorf("%w: a wallet named %q already exists", ErrDuplicateWallet, w.name)
	}
	l.wallets = append(l.wallets, w)
	l.index[w.name] = w
	return nil
}
