package expenses

import (
	"errors"
	"testing"
)

func TestDashboard_convertsAndSums(t *testing.T) {
	ledger := NewLedger(testRates()) // USD=1.0, EUR=0.9
	ledger.CreateWallet("Personal", "USD", d(100))

	dashboard, err := ledger.Dashboard("EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dashboard.TotalBalance.Equal(M(d(90), "EUR")) {
		t.Errorf("TotalBalance = %s, want €90.00", dashboard.TotalBalance)
	}
	if len(dashboard.Wallets) != 1 {
		t.Fatalf("got %d wallet lines, want 1", len(dashboard.Wallets))
	}
	line := dashboard.Wallets[0]
	if !line.BalanceInTarget.Equal(M(d(90), "EUR")) {
		t.Errorf("BalanceInTarget = %s, want €90.00", line.BalanceInTarget)
	}
}

// The dashboard total is the sum of each wallet's converted balance.
func TestDashboard_totalMatchesWalletLines(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Personal", "USD", d(1200))
	ledger.CreateWallet("Travel", "EUR", d(500))
	ledger.CreateWallet("Savings", "JPY", d(100000))
	ledger.AddExpense("Personal", "Rent", d(700), "housing")

	dashboard, err := ledger.Dashboard("USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := d(0)
	for _, line := range dashboard.Wallets {
		sum = sum.Add(line.BalanceInTarget.Amount())
	}
	if !dashboard.TotalBalance.Amount().Equal(sum) {
		t.Errorf("TotalBalance = %s, want the sum of wallet lines %s", dashboard.TotalBalance.Amount(), sum)
	}
	if want := dashboard.TotalBalance.Amount().Sub(dashboard.TotalSpent.Amount()); !dashboard.NetPosition.Amount().Equal(want) {
		t.Errorf("NetPosition = %s, want %s", dashboard.NetPosition.Amount(), want)
	}
}

func TestDashboard_emptyLedger(t *testing.T) {
	ledger := NewLedger(testRates())

	dashboard, err := ledger.Dashboard("USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dashboard.TotalBalance.IsZero() || !dashboard.TotalSpent.IsZero() {
		t.Errorf("totals = %s / %s, want zero", dashboard.TotalBalance, dashboard.TotalSpent)
	}
	if len(dashboard.Wallets) != 0 {
		t.Errorf("got %d wallet lines, want none", len(dashboard.Wallets))
	}
}

func TestDashboard_unsupportedTarget(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Personal", "USD", d(100))

	_, err := ledger.Dashboard("XXX")
	if !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("got %v, want ErrUnsupportedCurrency", err)
	}
	// The failed report leaves the ledger untouched.
	if w, _ := ledger.Wallet("Personal"); !w.Balance().Equal(d(100)) {
		t.Error("ledger changed by a failed dashboard")
	}
}

func TestWalletReport(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Personal", "USD", d(1500))
	ledger.AddExpense("Personal", "Groceries", d(45), "food")

	report, err := ledger.WalletReport("Personal", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Balance.Equal(M(d(1455), "USD")) {
		t.Errorf("Balance = %s, want $1,455.00", report.Balance)
	}
	if !report.Spent.Equal(M(d(45), "USD")) {
		t.Errorf("Spent = %s, want $45.00", report.Spent)
	}
	if len(report.Expenses) != 1 {
		t.Fatalf("got %d expenses, want 1", len(report.Expenses))
	}
	e := report.Expenses[0]
	if e.Description != "Groceries" || e.Category != "food" || !e.Amount.Equal(M(d(45), "USD")) {
		t.Errorf("unexpected expense line: %+v", e)
	}
}

func TestWalletReport_convertsIntoTarget(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Personal", "USD", d(100))
	ledger.AddExpense("Personal", "Groceries", d(10), "food")

	report, err := ledger.WalletReport("Personal", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.BalanceInTarget.Equal(M(d(81), "EUR")) {
		t.Errorf("BalanceInTarget = %s, want €81.00", report.BalanceInTarget)
	}
	if !report.Expenses[0].AmountInTarget.Equal(M(d(9), "EUR")) {
		t.Errorf("AmountInTarget = %s, want €9.00", report.Expenses[0].AmountInTarget)
	}
}

func TestWalletReport_blankTargetDefaultsToWalletCurrency(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Travel", "EUR", d(500))

	report, err := ledger.WalletReport("Travel", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TargetCurrency != "EUR" {
		t.Errorf("TargetCurrency = %q, want EUR", report.TargetCurrency)
	}
	if !report.BalanceInTarget.Equal(report.Balance) {
		t.Errorf("BalanceInTarget = %s, want the native balance %s", report.BalanceInTarget, report.Balance)
	}
}

func TestWalletReport_failures(t *testing.T) {
	ledger := NewLedger(testRates())
	ledger.CreateWallet("Personal", "USD", d(100))

	if _, err := ledger.WalletReport("Nope", "USD"); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("got %v, want ErrWalletNotFound", err)
	}
	if _, err := ledger.WalletReport("Personal", "XXX"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("got %v, want ErrUnsupportedCurrency", err)
	}
}

func TestPreview_carriesDemoFlag(t *testing.T) {
	ledger := DemoLedger(DefaultRates())

	preview, err := ledger.Preview("USD", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !preview.UsingDemoData {
		t.Error("UsingDemoData = false, want true")
	}
	if preview.TotalBalance.IsZero() {
		t.Error("demo preview has a zero total balance")
	}
	if want := preview.TotalBalance.Amount().Sub(preview.TotalSpent.Amount()); !preview.NetPosition.Amount().Equal(want) {
		t.Errorf("NetPosition = %s, want %s", preview.NetPosition.Amount(), want)
	}
}

func TestDemoLedger_sampleBalances(t *testing.T) {
	ledger := DemoLedger(DefaultRates())

	testCases := []struct {
		wallet   string
		currency string
		balance  float64
		expenses int
	}{
		{wallet: "Personal", currency: "USD", balance: 1200, expenses: 2},
		{wallet: "Travel", currency: "EUR", balance: 500, expenses: 1},
		{wallet: "Savings", currency: "JPY", balance: 100000, expenses: 0},
	}
	for _, tc := range testCases {
		w, err := ledger.Wallet(tc.wallet)
		if err != nil {
			t.Fatalf("wallet %q: %v", tc.wallet, err)
		}
		if w.Currency() != tc.currency || !w.Balance().Equal(d(tc.balance)) || len(w.Expenses()) != tc.expenses {
			t.Errorf("wallet %q: got %s %s with %d expenses, want %s %v with %d",
				tc.wallet, w.Currency(), w.Balance(), len(w.Expenses()), tc.currency, tc.balance, tc.expenses)
		}
	}
}
