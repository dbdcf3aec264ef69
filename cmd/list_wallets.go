package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ewal/expenses/renderer"
	"github.com/google/subcommands"
)

type listWalletsCmd struct{}

func (*listWalletsCmd) Name() string     { return "list-wallets" }
func (*listWalletsCmd) Synopsis() string { return "list wallets and balances" }
func (*listWalletsCmd) Usage() string {
	return `ews list-wallets

  Lists every wallet with its currency, balance and expense count, in
  creation order.
`
}

func (*listWalletsCmd) SetFlags(f *flag.FlagSet) {}

func (*listWalletsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Wallets(ledger.Summaries()))
	return subcommands.ExitSuccess
}
