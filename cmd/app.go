// Package cmd implements the CLI application to manage wallets and
// expenses. Every subcommand maps one-to-one onto a ledger operation plus
// rendering of the result.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ewal/expenses"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "wallets.json", "Path to the wallet ledger file (JSON document)")

// Commands lists every subcommand, in registration order.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&createWalletCmd{},
	&addExpenseCmd{},
	&listWalletsCmd{},
	&dashboardCmd{},
	&previewCmd{},
	&walletReportCmd{},
	&currenciesCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// loadLedger reads the ledger file using the built-in currency table,
// bootstrapping an empty ledger when the file does not exist yet.
func loadLedger() (*expenses.Ledger, error) {
	return expenses.LoadLedger(*ledgerFile, expenses.DefaultRates())
}

// saveLedger persists the whole ledger back to the ledger file.
func saveLedger(ledger *expenses.Ledger) error {
	return expenses.SaveLedger(*ledgerFile, ledger)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
