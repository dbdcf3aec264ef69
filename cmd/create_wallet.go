package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ewal/expenses"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type createWalletCmd struct {
	balance string
}

func (*createWalletCmd) Name() string     { return "create-wallet" }
func (*createWalletCmd) Synopsis() string { return "create a new wallet" }
func (*createWalletCmd) Usage() string {
	return `ews create-wallet <name> <currency> [-balance <amount>]

  Creates a new wallet holding a balance in the given currency. The name
  must not be taken yet; the initial balance defaults to zero and must not
  be negative.
`
}

func (c *createWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.balance, "balance", "0", "Initial balance for the wallet.")
}

func (c *createWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: create-wallet expects <name> and <currency> arguments.")
		return subcommands.ExitUsageError
	}
	name, currency := f.Arg(0), f.Arg(1)

	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	wallet, err := ledger.CreateWallet(name, currency, balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created wallet %q holding %s.\n", wallet.Name(), expenses.M(wallet.Balance(), wallet.Currency()))
	return subcommands.ExitSuccess
}
