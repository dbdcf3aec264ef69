package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ewal/expenses/renderer"
	"github.com/google/subcommands"
)

type walletReportCmd struct {
	currency string
}

func (*walletReportCmd) Name() string     { return "wallet-report" }
func (*walletReportCmd) Synopsis() string { return "show details for a wallet" }
func (*walletReportCmd) Usage() string {
	return `ews wallet-report <wallet> [-currency <code>]

  Shows a wallet's balance, total spent and full expense list, converted
  into the target currency. The target defaults to the wallet's own
  currency.
`
}

func (c *walletReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Optional target currency for conversion.")
}

func (c *walletReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: wallet-report expects a <wallet> argument.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	report, err := ledger.WalletReport(f.Arg(0), c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WalletReport(report))
	return subcommands.ExitSuccess
}
