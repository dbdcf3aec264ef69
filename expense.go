package expenses

import "github.com/shopspring/decimal"

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "uncategorized"

// Expense is a single recorded deduction from a wallet's balance. It is
// immutable once recorded and owned by the wallet it was recorded against.
type Expense struct {
	Description string
	Amount      decimal.Decimal
	Category    string
}
