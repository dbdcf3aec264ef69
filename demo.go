package expenses

import "github.com/shopspring/decimal"

// DemoLedger returns a small ledger with representative wallets and
// expenses, used by the preview command to showcase consolidated totals
// without reading or writing any file.
func DemoLedger(rates *Rates) *Ledger {
	ledger := NewLedger(rates)

	// Initial balances are chosen so the remaining balances land on round
	// sample values after the expenses below.
	personal, _ := ledger.CreateWallet("Personal", "USD", decimal.NewFromInt(2050))
	personal.RecordExpense("Rent", decimal.NewFromInt(700), "housing")
	personal.RecordExpense("Groceries", decimal.NewFromInt(150), "food") // balance 1200

	travel, _ := ledger.CreateWallet("Travel", "EUR", decimal.NewFromInt(700))
	travel.RecordExpense("Flights", decimal.NewFromInt(200), "travel") // balance 500

	ledger.CreateWallet("Savings", "JPY", decimal.NewFromInt(100000))
	return ledger
}
