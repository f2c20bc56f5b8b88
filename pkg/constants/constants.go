// Package constants provides shared constants for the mortgage-calculator application.
package constants

import "math"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxDurationMonths is the largest loan duration that can be represented
	MaxDurationMonths = math.MaxInt32
)

// Display constants
const (
	// PromptMarker prefixes prompts, greetings and error messages
	PromptMarker = "> "

	// Separator delimits the summary and payment blocks
	Separator = "------------------------------------------------------"

	// PercentSuffix follows the APR in the loan summary
	PercentSuffix = "%"

	// ClearScreenSequence is the ANSI sequence that clears the terminal and homes the cursor
	ClearScreenSequence = "\033[H\033[2J"
)

// Answers accepted by the continuation prompt
const (
	AnswerYes = "y"
	AnswerNo  = "n"
)

// Message catalog keys
const (
	KeyWelcome         = "welcome"
	KeyGetAmount       = "get_amount"
	KeyInvalidAmount   = "invalid_amount"
	KeyGetAPR          = "get_apr"
	KeyInvalidAPR      = "invalid_apr"
	KeyGetDuration     = "get_duration"
	KeyInvalidDuration = "invalid_duration"
	KeyThankYou        = "thankyou"
	KeyContinue        = "continue"
	KeyInvalidContinue = "invalid_continue"
	KeyLoanAmount      = "loan_amount"
	KeyCurrency        = "currency"
	KeyAPR             = "apr"
	KeyLoanDuration    = "loan_duration"
	KeyMonthlyPayment  = "monthly_payment"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultLanguage is the catalog language used when none is configured
	DefaultLanguage = "en"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "MORTGAGE"
)

// Logging defaults
const (
	// DefaultLogLevel keeps the interactive console free of routine log lines
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the default zap encoder
	DefaultLogFormat = "console"
)
