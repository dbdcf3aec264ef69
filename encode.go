package expenses

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// expenseRecord and walletRecord mirror the persisted document exactly.
// Field names and nesting are a compatibility contract with hand-edited
// files and must not change.
type expenseRecord struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

type walletRecord struct {
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Expenses []expenseRecord `json:"expenses"`
}

type walletDocument struct {
	Wallets []walletRecord `json:"wallets"`
}

// DecodeLedger reads a whole wallet document from r. Validation is strict:
// a record missing a required field fails the decode instead of being
// silently defaulted. An empty source is the bootstrap case and yields an
// empty ledger.
func DecodeLedger(rates *Rates, r io.Reader) (*Ledger, error) {
	var doc walletDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewLedger(rates), nil
		}
		return nil, fmt.Errorf("could not decode wallet document: %w", err)
	}

	ledger := NewLedger(rates)
	for i, rec := range doc.Wallets {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("wallet #%d: missing required field %q", i, "name")
		}
		if strings.TrimSpace(rec.Currency) == "" {
			return nil, fmt.Errorf("wallet %q: missing required field %q", rec.Name, "currency")
		}
		w := newWallet(rec.Name, rec.Currency, rec.Balance)
		for j, e := range rec.Expenses {
			if strings.TrimSpace(e.Description) == "" {
				return nil, fmt.Errorf("wallet %q, expense #%d: missing required field %q", rec.Name, j, "description")
			}
			if !e.Amount.IsPositive() {
				return nil, fmt.Errorf("wallet %q, expense #%d: %w: amount must be positive, got %s", rec.Name, j, ErrInvalidAmount, e.Amount)
			}
			category := e.Category
			if category == "" {
				category = DefaultCategory
			}
			w.expenses = append(w.expenses, Expense{
				Description: e.Description,
				Amount:      e.Amount,
				Category:    category,
			})
		}
		if err := ledger.insert(w); err != nil {
			return nil, fmt.Errorf("wallet #%d: %w", i, err)
		}
	}
	return ledger, nil
}

// EncodeLedger writes the whole ledger to w as one indented JSON document,
// wallets in creation order, expenses in recording order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	doc := walletDocument{Wallets: make([]walletRecord, 0, ledger.Len())}
	for _, wallet := range ledger.wallets {
		rec := walletRecord{
			Name:     wallet.name,
			Currency: wallet.currency,
			Balance:  wallet.balance,
			Expenses: make([]expenseRecord, 0, len(wallet.expenses)),
		}
		for _, e := range wallet.expenses {
			rec.Expenses = append(rec.Expenses, expenseRecord{
				Description: e.Description,
				Amount:      e.Amount,
				Category:    e.Category,
			})
		}
		doc.Wallets = append(doc.Wallets, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode wallet document: %w", err)
	}
	return nil
}
