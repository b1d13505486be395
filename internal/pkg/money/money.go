// Package money centralizes decimal arithmetic for credit amounts. All
// monetary values travel as fixed-precision decimals, never floats; rounding
// is banker's (half-even) at currency precision.
package money

import (
	"github.com/shopspring/decimal"
)

const CurrencyPrecision = 2

var hundred = decimal.NewFromInt(100)

// Percent applies pct (a percentage, e.g. 10 for 10%) to value and rounds
// half-even to currency precision.
func Percent(value, pct decimal.Decimal) decimal.Decimal {
	return value.Mul(pct).Div(hundred).RoundBank(CurrencyPrecision)
}

// IsNegative reports whether d is strictly below zero.
func IsNegative(d decimal.Decimal) bool {
	return d.Sign() < 0
}
