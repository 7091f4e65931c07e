// Package cli provides the command-line interface for curfmt.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rpgo/curfmt/internal/config"
	"github.com/rpgo/curfmt/pkg/currencyfmt"
)

// Version information (set at build time).
var Version = "0.1.0"

// app carries the resolved configuration from the root pre-run to subcommands.
type app struct {
	cfgFile string
	config  *config.Configuration
	logger  *slog.Logger
}

// overridable flags and the configuration field each one writes
var configFlags = []struct {
	name  string
	usage string
	field func(*config.Configuration) *string
}{
	{"locale", "BCP 47 locale tag (default en-PH)", func(c *config.Configuration) *string { return &c.Locale }},
	{"currency", "ISO 4217 currency code (default PHP)", func(c *config.Configuration) *string { return &c.Currency }},
	{"display", "Currency display: symbol|narrowSymbol|code", func(c *config.Configuration) *string { return &c.Display }},
	{"rounding", "Rounding: standard|cash", func(c *config.Configuration) *string { return &c.Rounding }},
	{"strategy", "Symbol placement strategy: strip|reassemble", func(c *config.Configuration) *string { return &c.Strategy }},
	{"output", "Output format: console|plain|json|csv", func(c *config.Configuration) *string { return &c.Output }},
	{"log-level", "Log level: debug|info|warn|error", func(c *config.Configuration) *string { return &c.LogLevel }},
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "curfmt",
		Short: "Format amounts as localized currency, symbol first",
		Long: `curfmt renders amounts with a locale's grouping and decimal conventions
and always places the currency symbol in front of the number.

Settings are read from defaults, then the --config YAML file, then CURFMT_*
environment variables, then flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, version and completion commands
			switch cmd.Name() {
			case "help", "version", "completion", "__complete":
				return nil
			}
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	for _, f := range configFlags {
		rootCmd.PersistentFlags().String(f.name, "", f.usage)
	}

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"console", "plain", "json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("strategy", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"strip", "reassemble"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newFormatCommand(a))
	rootCmd.AddCommand(newSymbolCommand(a))
	rootCmd.AddCommand(newPartsCommand(a))
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	parser := config.NewInputParser()

	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := parser.LoadFromFile(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := parser.ApplyEnv(cfg); err != nil {
		return err
	}
	for _, f := range configFlags {
		if fl := cmd.Flags().Lookup(f.name); fl != nil && fl.Changed {
			*f.field(cfg) = fl.Value.String()
		}
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "locale", cfg.Locale, "currency", cfg.Currency, "config_file", a.cfgFile)
	return nil
}

func (a *app) formatter() (*currencyfmt.Formatter, error) {
	opts, err := a.config.FormatterOptions(slogLogger{a.logger})
	if err != nil {
		return nil, err
	}
	return currencyfmt.New(opts...)
}
