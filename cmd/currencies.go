package cmd

import (
	"context"
	"flag"

	"github.com/ewal/expenses"
	"github.com/ewal/expenses/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "supported-currencies" }
func (*currenciesCmd) Synopsis() string { return "list supported currency codes" }
func (*currenciesCmd) Usage() string {
	return `ews supported-currencies

  Lists every supported currency code with its label and its rate relative
  to the base unit.
`
}

func (*currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (*currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Currencies(expenses.DefaultRates().Currencies()))
	return subcommands.ExitSuccess
}
