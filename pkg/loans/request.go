package loans

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/validation"
)

// LoanInput holds the loan fields exactly as the user typed them. The raw
// text is what gets validated and echoed back in the summary.
type LoanInput struct {
	Amount   string
	APR      string
	Duration string
}

// LoanRequest holds the numeric loan terms once LoanInput has been validated.
type LoanRequest struct {
	Amount         float64
	APRPercent     float64
	DurationMonths int
}

// Parse converts validated raw input into a LoanRequest.
func (in LoanInput) Parse() (LoanRequest, error) {
	var req LoanRequest

	if validation.IsInvalidAmount(in.Amount) {
		return req, fmt.Errorf("invalid loan amount %q", in.Amount)
	}
	if validation.IsInvalidAPR(in.APR) {
		return req, fmt.Errorf("invalid APR %q", in.APR)
	}
	if validation.IsInvalidDuration(in.Duration) {
		return req, fmt.Errorf("invalid loan duration %q", in.Duration)
	}

	req.Amount, _ = validation.ParseNumber(in.Amount)
	req.APRPercent, _ = validation.ParseNumber(in.APR)
	months, _ := validation.ParseNumber(in.Duration)
	req.DurationMonths = int(months)

	return req, nil
}
