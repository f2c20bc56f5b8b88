package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/console"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/internal/messages"
	"github.com/iwvelando/mortgage-calculator/internal/session"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags holds the command line overrides; CLI values take precedence over configuration.
type flags struct {
	configLocation string
	language       string
	messagesFile   string
	currency       string
	logLevel       string
}

// loadCatalog resolves the message catalog once at startup. Any missing
// message or unknown language is reported here rather than mid-session.
func loadCatalog(conf *config.Configuration) (*messages.Catalog, error) {
	var bundle *messages.Bundle
	var err error
	if conf.MessagesFile != "" {
		bundle, err = messages.Load(conf.MessagesFile)
	} else {
		bundle, err = messages.Default()
	}
	if err != nil {
		return nil, err
	}

	catalog, err := bundle.Catalog(conf.Language)
	if err != nil {
		return nil, err
	}
	return catalog.WithCurrency(conf.Currency), nil
}

// applyOverrides copies non-empty CLI values onto the loaded configuration.
func (f *flags) applyOverrides(conf *config.Configuration) {
	if f.language != "" {
		conf.Language = f.language
	}
	if f.messagesFile != "" {
		conf.MessagesFile = f.messagesFile
	}
	if f.currency != "" {
		conf.Currency = f.currency
	}
}

func run(f *flags, in io.Reader, out io.Writer) error {
	// A .env file is optional; its absence is not an error.
	_ = godotenv.Load()

	conf, err := config.LoadConfiguration(f.configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", f.configLocation, err)
	}
	f.applyOverrides(conf)

	logger, err := logging.New(conf.Logging, f.logLevel, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	catalog, err := loadCatalog(conf)
	if err != nil {
		logger.Error("failed to load message catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	term := console.New(in, out, console.Options{
		Color:       conf.Console.Color,
		ClearScreen: conf.Console.ClearScreen,
	})
	return session.New(catalog, term, logger).Run()
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "mortgage-calculator",
		Short:         "Interactive fixed-rate mortgage payment calculator",
		Long:          "Prompts for a loan amount, APR and duration in months and prints the fixed monthly payment.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, in, out)
		},
	}

	cmd.Flags().StringVar(&f.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&f.language, "lang", "", "message catalog language override (e.g. en, es)")
	cmd.Flags().StringVar(&f.messagesFile, "messages", "", "path to a YAML, JSON or TOML message catalog")
	cmd.Flags().StringVar(&f.currency, "currency", "", "currency label override")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	return cmd
}

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
