// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsWholeNumber reports whether val has no fractional part.
func IsWholeNumber(val float64) bool {
	return math.Mod(val, 1) == 0
}

// PeriodicRate converts an annual percentage rate into the monthly periodic rate.
func PeriodicRate(aprPercent float64) float64 {
	return aprPercent / constants.PercentageMultiplier / constants.MonthsPerYear
}
