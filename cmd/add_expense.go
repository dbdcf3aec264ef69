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

type addExpenseCmd struct {
	category string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense against a wallet" }
func (*addExpenseCmd) Usage() string {
	return `ews add-expense <wallet> <amount> <description> [-category <category>]

  Records an expense against a wallet and subtracts the amount from its
  balance. The amount must be positive; the balance is allowed to go
  negative. The category defaults to "uncategorized".
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category for the expense.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: add-expense expects <wallet>, <amount> and <description> arguments.")
		return subcommands.ExitUsageError
	}
	walletName, description := f.Arg(0), f.Arg(2)

	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	expense, err := ledger.AddExpense(walletName, description, amount, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	wallet, _ := ledger.Wallet(walletName)
	fmt.Printf("Added expense %q (%s, %s) to wallet %q; balance is now %s.\n",
		expense.Description, expenses.M(expense.Amount, wallet.Currency()), expense.Category,
		walletName, expenses.M(wallet.Balance(), wallet.Currency()))
	return subcommands.ExitSuccess
}
