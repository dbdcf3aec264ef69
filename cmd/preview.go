package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ewal/expenses"
	"github.com/ewal/expenses/renderer"
	"github.com/google/subcommands"
)

type previewCmd struct {
	currency string
	demo     bool
}

func (*previewCmd) Name() string { return "preview" }
func (*previewCmd) Synopsis() string {
	return "preview the consolidated totals, optionally with demo data"
}
func (*previewCmd) Usage() string {
	return `ews preview [-currency <code>] [-demo]

  Shows the consolidated dashboard totals. With -demo, a built-in sample
  ledger is used instead of the persisted file, nothing is read or written,
  and the output states that demo data was used.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "Target currency for the preview.")
	f.BoolVar(&c.demo, "demo", false, "Use built-in sample data without reading or writing any file.")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var ledger *expenses.Ledger
	if c.demo {
		ledger = expenses.DemoLedger(expenses.DefaultRates())
	} else {
		var err error
		ledger, err = loadLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	preview, err := ledger.Preview(strings.ToUpper(c.currency), c.demo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Preview(preview))
	return subcommands.ExitSuccess
}
