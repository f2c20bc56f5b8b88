package loans

import (
	"fmt"
	"math"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		aprPercent     float64
		durationMonths int
		expectedRange  []float64 // [min, max] expected range
	}{
		{
			name:           "Standard 30-year mortgage",
			amount:         100000,
			aprPercent:     6.0,
			durationMonths: 360,
			expectedRange:  []float64{599.55, 599.56}, // Around $599.55
		},
		{
			name:           "5-year car loan",
			amount:         20000,
			aprPercent:     4.0,
			durationMonths: 60,
			expectedRange:  []float64{360, 380}, // Around $368
		},
		{
			name:           "Zero interest loan",
			amount:         200000,
			aprPercent:     0.0,
			durationMonths: 360,
			expectedRange:  []float64{555.55, 555.56}, // Exactly $555.5555...
		},
		{
			name:           "High interest loan",
			amount:         10000,
			aprPercent:     18.0,
			durationMonths: 36,
			expectedRange:  []float64{360, 380}, // Around $362
		},
		{
			name:           "Single month",
			amount:         1200,
			aprPercent:     12.0,
			durationMonths: 1,
			expectedRange:  []float64{1211.99, 1212.01}, // One month of interest
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMonthlyPayment(tt.amount, tt.aprPercent, tt.durationMonths)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("CalculateMonthlyPayment() = %.4f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestCalculateMonthlyPaymentZeroRateIsEvenSplit(t *testing.T) {
	amounts := []float64{1, 999.99, 12000, 200000, 1e7}
	durations := []int{1, 7, 12, 360, 480}

	for _, amount := range amounts {
		for _, duration := range durations {
			result := CalculateMonthlyPayment(amount, 0, duration)
			expected := amount / float64(duration)
			if !mathutil.WithinTolerance(result, expected, 1e-9) {
				t.Errorf("CalculateMonthlyPayment(%v, 0, %d) = %v, expected %v", amount, duration, result, expected)
			}
		}
	}
}

func TestCalculateMonthlyPaymentAccruesInterest(t *testing.T) {
	amounts := []float64{500, 25000, 350000}
	rates := []float64{0.01, 1, 3.75, 6, 24.9}
	durations := []int{2, 12, 180, 360}

	for _, amount := range amounts {
		for _, rate := range rates {
			for _, duration := range durations {
				name := fmt.Sprintf("%v_%v_%d", amount, rate, duration)
				t.Run(name, func(t *testing.T) {
					payment := CalculateMonthlyPayment(amount, rate, duration)
					if total := payment * float64(duration); total <= amount {
						t.Errorf("total paid %.6f should exceed amount %.2f", total, amount)
					}
				})
			}
		}
	}
}

func TestCalculateMonthlyPaymentMatchesClosedForm(t *testing.T) {
	// 100000 at 6% over 360 months, computed independently.
	rate := 0.06 / 12
	expected := 100000 * rate * math.Pow(1+rate, 360) / (math.Pow(1+rate, 360) - 1)

	result := CalculateMonthlyPayment(100000, 6, 360)
	if !mathutil.WithinTolerance(result, expected, 1e-6) {
		t.Errorf("CalculateMonthlyPayment() = %v, expected %v", result, expected)
	}
	if got := fmt.Sprintf("%.2f", result); got != "599.55" {
		t.Errorf("formatted payment = %s, expected 599.55", got)
	}
}
