package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/curfmt/internal/output"
	"github.com/rpgo/curfmt/pkg/currencyfmt"
	"github.com/rpgo/curfmt/pkg/intl"
)

// Configuration holds the CLI defaults. Every field may come from the YAML
// file, a CURFMT_* environment variable or a flag, in increasing precedence.
type Configuration struct {
	Locale   string `yaml:"locale" env:"CURFMT_LOCALE"`
	Currency string `yaml:"currency" env:"CURFMT_CURRENCY"`
	Display  string `yaml:"display" env:"CURFMT_DISPLAY"`
	Rounding string `yaml:"rounding" env:"CURFMT_ROUNDING"`
	Strategy string `yaml:"strategy" env:"CURFMT_STRATEGY"`
	Output   string `yaml:"output" env:"CURFMT_OUTPUT"`
	LogLevel string `yaml:"log_level" env:"CURFMT_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Configuration {
	return &Configuration{
		Locale:   currencyfmt.DefaultLocale,
		Currency: currencyfmt.DefaultCurrency,
		Display:  intl.DisplaySymbol.String(),
		Rounding: intl.RoundingStandard.String(),
		Strategy: currencyfmt.StripSymbol.String(),
		Output:   "console",
		LogLevel: "warn",
	}
}

// InputParser handles parsing of configuration files and environment
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides fields whose CURFMT_* variable is set
func (ip *InputParser) ApplyEnv(config *Configuration) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ValidateConfiguration checks every named option without building a formatter
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if strings.TrimSpace(config.Locale) == "" {
		return fmt.Errorf("locale is required")
	}
	if len(strings.TrimSpace(config.Currency)) != 3 {
		return fmt.Errorf("currency must be a three-letter code, got %q", config.Currency)
	}
	if _, err := intl.ParseDisplay(config.Display); err != nil {
		return err
	}
	if _, err := intl.ParseRounding(config.Rounding); err != nil {
		return err
	}
	if _, err := currencyfmt.ParseStrategy(config.Strategy); err != nil {
		return err
	}
	if output.GetFormatterByName(config.Output) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, config.Output)
	}
	if _, err := config.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// FormatterOptions translates the configuration into formatter options
func (c *Configuration) FormatterOptions(logger currencyfmt.Logger) ([]currencyfmt.Option, error) {
	display, err := intl.ParseDisplay(c.Display)
	if err != nil {
		return nil, err
	}
	rounding, err := intl.ParseRounding(c.Rounding)
	if err != nil {
		return nil, err
	}
	strategy, err := currencyfmt.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return []currencyfmt.Option{
		currencyfmt.WithLocale(c.Locale),
		currencyfmt.WithCurrency(c.Currency),
		currencyfmt.WithDisplay(display),
		currencyfmt.WithRounding(rounding),
		currencyfmt.WithStrategy(strategy),
		currencyfmt.WithLogger(logger),
	}, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Configuration) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
