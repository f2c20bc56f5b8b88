// Package format renders loan values as the lines shown to the user.
package format

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
)

// Labels supplies localized label text by message key.
type Labels interface {
	Get(key string) string
}

// LoanSummary echoes the entered values back using the raw text the user
// typed, so "1000" and "1000.00" are shown as entered.
func LoanSummary(labels Labels, input loans.LoanInput) []string {
	return []string{
		constants.Separator,
		labels.Get(constants.KeyLoanAmount) + labels.Get(constants.KeyCurrency) + input.Amount,
		labels.Get(constants.KeyAPR) + input.APR + constants.PercentSuffix,
		labels.Get(constants.KeyLoanDuration) + input.Duration,
	}
}

// MonthlyPayment renders the payment to exactly two decimal places between separators.
func MonthlyPayment(labels Labels, payment float64) []string {
	return []string{
		constants.Separator,
		labels.Get(constants.KeyMonthlyPayment) + Amount(payment),
		constants.Separator,
	}
}

// Amount formats a currency value to two decimal places without grouping.
func Amount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
