// Package validation classifies raw user input for each calculator field.
//
// Every predicate reports whether the text is INVALID so that it can drive a
// retry loop directly. The predicates are total: they never panic and never
// return an error, malformed numbers are simply rejected.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// Validator reports whether raw input should be rejected.
type Validator func(text string) bool

// decimalPattern is a plain decimal number with an optional exponent. Go
// literal forms that ParseFloat also accepts (hex, underscores, Inf, NaN)
// do not match.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses text as a finite real number. Surrounding whitespace is
// tolerated, any other trailing or leading characters are not.
func ParseNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if !decimalPattern.MatchString(trimmed) {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// IsBlankOrNonNumeric is the base check shared by the numeric fields.
func IsBlankOrNonNumeric(text string) bool {
	if strings.TrimLeftFunc(text, unicode.IsSpace) == "" {
		return true
	}
	_, ok := ParseNumber(text)
	return !ok
}

// IsInvalidAmount rejects blank, non-numeric, zero and negative amounts.
func IsInvalidAmount(text string) bool {
	if IsBlankOrNonNumeric(text) {
		return true
	}
	value, _ := ParseNumber(text)
	return value <= 0
}

// IsInvalidAPR rejects blank, non-numeric and negative rates. Zero is an
// interest-free loan and is accepted.
func IsInvalidAPR(text string) bool {
	if IsBlankOrNonNumeric(text) {
		return true
	}
	value, _ := ParseNumber(text)
	return value < 0
}

// IsInvalidDuration accepts only positive whole numbers of months.
func IsInvalidDuration(text string) bool {
	if IsBlankOrNonNumeric(text) {
		return true
	}
	value, _ := ParseNumber(text)
	return value <= 0 || !mathutil.IsWholeNumber(value) || value > constants.MaxDurationMonths
}

// IsInvalidYesNo accepts "y" or "n" in either case and nothing else.
func IsInvalidYesNo(text string) bool {
	answer := strings.ToLower(text)
	return answer != constants.AnswerYes && answer != constants.AnswerNo
}
