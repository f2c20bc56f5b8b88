// Package loans provides the loan model and fixed-rate payment calculation.
package loans

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
// Inputs are expected to be validated already; a zero duration is not supported.
func CalculateMonthlyPayment(amount, aprPercent float64, durationMonths int) float64 {
	if aprPercent == 0 {
		// For zero interest, simply divide the amount by term
		return amount / float64(durationMonths)
	}

	periodicInterestRate := mathutil.PeriodicRate(aprPercent)
	discountFactor := 1.00 - math.Pow(1.00+periodicInterestRate, -float64(durationMonths))
	return amount * (periodicInterestRate / discountFactor)
}

// MonthlyPayment calculates the monthly payment for a parsed request.
func (r LoanRequest) MonthlyPayment() float64 {
	return CalculateMonthlyPayment(r.Amount, r.APRPercent, r.DurationMonths)
}
