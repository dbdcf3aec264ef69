package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ewal/expenses/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "show the consolidated dashboard in a target currency"
}
func (*dashboardCmd) Usage() string {
	return `ews dashboard <currency>

  Converts every wallet balance into the target currency and shows the
  per-wallet figures and the consolidated totals.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: dashboard expects a <currency> argument.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	dashboard, err := ledger.Dashboard(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Dashboard(dashboard))
	return subcommands.ExitSuccess
}
