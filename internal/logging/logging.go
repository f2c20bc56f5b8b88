// Package logging builds the zap logger for the calculator. Log output never
// goes to stdout, which belongs to the interactive session.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// ParseLevel maps a configured level name to a zap level. Empty selects the default.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = constants.DefaultLogLevel
	}
	level, ok := levels[strings.ToLower(name)]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.CallerKey = zapcore.OmitKey
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

// New creates a logger from configuration. levelOverride comes from the
// command line and wins over the configured level. Entries go to the
// configured output file, or to fallback when none is set.
func New(cfg config.LoggingConfig, levelOverride string, fallback io.Writer) (*zap.Logger, error) {
	name := cfg.Level
	if levelOverride != "" {
		name = levelOverride
	}
	level, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	sink := zapcore.AddSync(fallback)
	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		fileSink, _, err := zap.Open(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.OutputFile, err)
		}
		sink = fileSink
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(sink), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.ErrorOutput(zapcore.Lock(sink))), nil
}
