package expenses

import "github.com/shopspring/decimal"

// d is a helper for tests to build exact decimals from float constants.
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testRates returns a small fixed table so tests do not depend on the
// built-in constants.
func testRates() *Rates {
	return NewRates(
		Rate{Code: "USD", Label: "United States Dollar", Rate: d(1.0)},
		Rate{Code: "EUR", Label: "Euro", Rate: d(0.9)},
		Rate{Code: "JPY", Label: "Japanese Yen", Rate: d(140)},
	)
}
