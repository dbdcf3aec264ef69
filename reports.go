package expenses

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WalletLine is one wallet's contribution to a dashboard.
type WalletLine struct {
	Name            string
	Currency        string
	Balance         Money
	BalanceInTarget Money
	Spent           Money
	SpentInTarget   Money
}

// Dashboard is the consolidated, currency-converted view across all
// wallets.
type Dashboard struct {
	TargetCurrency string
	TotalBalance   Money
	TotalSpent     Money
	NetPosition    Money // TotalBalance minus TotalSpent
	Wallets        []WalletLine
}

// Dashboard converts every wallet balance into the target currency and sums
// them. An empty ledger yields zero totals and no lines, not an error.
func (l *Ledger) Dashboard(target string) (*Dashboard, error) {
	if !l.rates.Supports(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, target)
	}
	totalBalance := decimal.Zero
	totalSpent := decimal.Zero
	lines := make([]WalletLine, 0, len(l.wallets))
	for _, w := range l.wallets {
		balance, err := l.rates.Convert(w.balance, w.currency, target)
		if err != nil {
			return nil, fmt.Errorf("wallet %q: %w", w.name, err)
		}
		spent, err := l.rates.Convert(w.TotalSpent(), w.currency, target)
		if err != nil {
			return nil, fmt.Errorf("wallet %q: %w", w.name, err)
		}
		totalBalance = totalBalance.Add(balance)
		totalSpent = totalSpent.Add(spent)
		lines = append(lines, WalletLine{
			Name:            w.name,
			Currency:        w.currency,
			Balance:         M(w.balance, w.currency),
			BalanceInTarget: M(balance, target),
			Spent:           M(w.TotalSpent(), w.currency),
			SpentInTarget:   M(spent, target),
		})
	}
	return &Dashboard{
		TargetCurrency: target,
		TotalBalance:   M(totalBalance, target),
		TotalSpent:     M(totalSpent, target),
		NetPosition:    M(totalBalance.Sub(totalSpent), target),
		Wallets:        lines,
	}, nil
}

// ExpenseLine is one expense in a wallet report, with its converted amount.
type ExpenseLine struct {
	Description    string
	Category       string
	Amount         Money
	AmountInTarget Money
}

// WalletReport is the detailed, single-wallet view.
type WalletReport struct {
	Name            string
	Currency        string
	TargetCurrency  string
	Balance         Money
	BalanceInTarget Money
	Spent           Money
	SpentInTarget   Money
	Expenses        []ExpenseLine
}

// WalletReport builds the detailed view of one wallet, with the balance,
// total spent and every expense converted into the target currency. A blank
// target defaults to the wallet's own currency.
func (l *Ledger) WalletReport(name, target string) (*WalletReport, error) {
	w, err := l.Wallet(name)
	if err != nil {
		return nil, err
	}
	if target == "" {
		target = w.currency
	}
	balance, err := w.BalanceIn(l.rates, target)
	if err != nil {
		return nil, err
	}
	spent, err := l.rates.Convert(w.TotalSpent(), w.currency, target)
	if err != nil {
		return nil, err
	}
	report := &WalletReport{
		Name:            w.name,
		Currency:        w.currency,
		TargetCurrency:  target,
		Balance:         M(w.balance, w.currency),
		BalanceInTarget: M(balance, target),
		Spent:           M(w.TotalSpent(), w.currency),
		SpentInTarget:   M(spent, target),
		Expenses:        make([]ExpenseLine, 0, len(w.expenses)),
	}
	for _, e := range w.expenses {
		converted, err := l.rates.Convert(e.Amount, w.currency, target)
		if err != nil {
			return nil, err
		}
		report.Expenses = append(report.Expenses, ExpenseLine{
			Description:    e.Description,
			Category:       e.Category,
			Amount:         M(e.Amount, w.currency),
			AmountInTarget: M(converted, target),
		})
	}
	return report, nil
}

// Preview is the dashboard condensed to its totals, with a marker telling
// whether it was computed from demo data instead of the persisted ledger.
type Preview struct {
	TargetCurrency string
	TotalBalance   Money
	TotalSpent     Money
	NetPosition    Money
	UsingDemoData  bool
}

// Preview condenses the dashboard into its consolidated totals.
func (l *Ledger) Preview(target string, demo bool) (*Preview, error) {
	d, err := l.Dashboard(target)
	if err != nil {
		return nil, err
	}
	return &Preview{
		TargetCurrency: d.TargetCurrency,
		TotalBalance:   d.TotalBalance,
		TotalSpent:     d.TotalSpent,
		NetPosition:    d.NetPosition,
		UsingDemoData:  demo,
	}, nil
}
