package expenses

import "errors"

// Validation failures surfaced by wallet and ledger operations. Callers
// match them with errors.Is; call sites wrap them with context.
//
// Validation always happens before any mutation, so a rejected operation
// leaves the ledger unchanged.
var (
	// ErrUnsupportedCurrency reports a conversion to or from a code absent
	// from the currency table.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInvalidCurrency reports a wallet creation with an unsupported code.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrInvalidAmount reports a non-positive expense amount or a negative
	// initial balance.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDescription reports a blank expense description.
	ErrInvalidDescription = errors.New("invalid description")
	// ErrDuplicateWallet reports a wallet creation with a name already taken.
	ErrDuplicateWallet = errors.New("duplicate wallet")
	// ErrWalletNotFound reports a lookup of an unknown wallet name.
	ErrWalletNotFound = errors.New("wallet not found")
)
