// Package renderer renders report values into markdown strings.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ewal/expenses"
)

//go:embed templates/*.md
var templates embed.FS

// Dashboard renders the consolidated dashboard to markdown.
func Dashboard(d *expenses.Dashboard) string {
	return renderTemplate("dashboard", "templates/dashboard.md", d)
}

// Wallets renders the list-wallets view to a markdown table.
func Wallets(summaries []expenses.Summary) string {
	return renderTemplate("wallets", "templates/wallets.md", summaries)
}

// WalletReport renders the detailed single-wallet view to markdown.
func WalletReport(r *expenses.WalletReport) string {
	return renderTemplate("walletReport", "templates/wallet_report.md", r)
}

// Currencies renders the supported currency table to markdown.
func Currencies(rates []expenses.Rate) string {
	return renderTemplate("currencies", "templates/currencies.md", rates)
}

// Preview renders the condensed dashboard totals to markdown.
func Preview(p *expenses.Preview) string {
	return renderTemplate("preview", "templates/preview.md", p)
}

// renderTemplate executes one embedded template over data.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
