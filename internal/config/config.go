// Package config defines the configuration structures for the calculator and
// loads them from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Language     string        `mapstructure:"language"`     // catalog language, e.g. en or es
	Currency     string        `mapstructure:"currency"`     // overrides the catalog currency label
	MessagesFile string        `mapstructure:"messagesFile"` // optional external catalog
	Logging      LoggingConfig `mapstructure:"logging"`
	Console      ConsoleConfig `mapstructure:"console"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// ConsoleConfig holds terminal rendering options
type ConsoleConfig struct {
	Color       bool `mapstructure:"color"`
	ClearScreen bool `mapstructure:"clearScreen"`
}

// LoadConfiguration loads the YAML-formatted configuration at configPath and
// applies MORTGAGE_* environment overrides (e.g. MORTGAGE_LOGGING_LEVEL).
// A missing file is not an error; defaults are used instead.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks the fields that cannot be checked by their consumers.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("language must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", constants.DefaultLanguage)
	v.SetDefault("currency", "")
	v.SetDefault("messagesFile", "")
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("console.color", true)
	v.SetDefault("console.clearScreen", true)
}
