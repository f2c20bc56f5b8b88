// Package session drives the interactive prompt loop of the calculator.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-calculator/internal/messages"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// IO is the console collaborator. ReadLine blocks until the user enters a
// line and returns io.EOF once input is closed.
type IO interface {
	Prompt(msg string)
	Warn(msg string)
	Println(line string)
	ReadLine() (string, error)
	Clear()
}

// Session runs calculation rounds until the user declines to continue.
type Session struct {
	catalog *messages.Catalog
	io      IO
	logger  *zap.Logger
	rounds  int
}

// New creates a session. A nil logger discards log output.
func New(catalog *messages.Catalog, console IO, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog: catalog,
		io:      console,
		logger:  logger.With(zap.String("session_id", uuid.NewString())),
	}
}

// Rounds returns the number of completed calculations.
func (s *Session) Rounds() int {
	return s.rounds
}

// CollectField prompts with promptKey and re-reads after showing errorKey
// until invalid accepts the line. There is no retry limit. The accepted line
// is returned unmodified.
func (s *Session) CollectField(promptKey, errorKey string, invalid validation.Validator) (string, error) {
	s.io.Prompt(s.catalog.Get(promptKey))

	for {
		line, err := s.io.ReadLine()
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", promptKey, err)
		}
		if !invalid(line) {
			return line, nil
		}
		s.logger.Debug("rejected input",
			zap.String("op", "session.CollectField"),
			zap.String("field", promptKey),
			zap.String("input", line),
		)
		s.io.Warn(s.catalog.Get(errorKey))
	}
}

// Run greets the user and repeats calculation rounds until the user answers
// "n" or input is closed. Closed input ends the session without error.
func (s *Session) Run() error {
	s.logger.Debug("session started",
		zap.String("op", "session.Run"),
		zap.String("language", s.catalog.Language()),
	)
	s.io.Prompt(s.catalog.Get(constants.KeyWelcome))

	for {
		again, err := s.round()
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed, ending session",
				zap.String("op", "session.Run"),
				zap.Int("rounds", s.rounds),
			)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			s.logger.Debug("session finished",
				zap.String("op", "session.Run"),
				zap.Int("rounds", s.rounds),
			)
			return nil
		}
		s.io.Clear()
	}
}

// round runs one calculation and reports whether the user wants another.
func (s *Session) round() (bool, error) {
	var input loans.LoanInput
	var err error

	input.Amount, err = s.CollectField(constants.KeyGetAmount, constants.KeyInvalidAmount, validation.IsInvalidAmount)
	if err != nil {
		return false, err
	}
	input.APR, err = s.CollectField(constants.KeyGetAPR, constants.KeyInvalidAPR, validation.IsInvalidAPR)
	if err != nil {
		return false, err
	}
	input.Duration, err = s.CollectField(constants.KeyGetDuration, constants.KeyInvalidDuration, validation.IsInvalidDuration)
	if err != nil {
		return false, err
	}

	request, err := input.Parse()
	if err != nil {
		return false, err
	}

	s.io.Prompt(s.catalog.Get(constants.KeyThankYou))
	s.printLines(format.LoanSummary(s.catalog, input))

	payment := request.MonthlyPayment()
	s.rounds++
	s.logger.Info("calculated monthly payment",
		zap.String("op", "session.round"),
		zap.Float64("amount", request.Amount),
		zap.Float64("apr", request.APRPercent),
		zap.Int("duration_months", request.DurationMonths),
		zap.Float64("monthly_payment", mathutil.Round(payment)),
	)
	s.printLines(format.MonthlyPayment(s.catalog, payment))

	answer, err := s.CollectField(constants.KeyContinue, constants.KeyInvalidContinue, validation.IsInvalidYesNo)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) != constants.AnswerNo, nil
}

func (s *Session) printLines(lines []string) {
	for _, line := range lines {
		s.io.Println(line)
	}
}
