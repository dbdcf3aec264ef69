package cmd

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// The first run has no ledger file yet; loading bootstraps an empty ledger
// and the first save creates the file.
func TestLoadSaveLedger_bootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	old := *ledgerFile
	*ledgerFile = path
	defer func() { *ledgerFile = old }()

	ledger, err := loadLedger()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", ledger.Len())
	}

	if _, err := ledger.CreateWallet("Personal", "USD", decimal.NewFromInt(1500)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := saveLedger(ledger); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := loadLedger()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	w, err := reloaded.Wallet("Personal")
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if !w.Balance().Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Balance() = %s, want 1500", w.Balance())
	}
}
