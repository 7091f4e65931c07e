package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/curfmt/internal/output"
	money "github.com/rpgo/curfmt/pkg/decimal"
)

func newFormatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format AMOUNT...",
		Short: "Format one or more amounts",
		Example: `  # Philippine peso for en-PH (the defaults)
  curfmt format 1234.5

  # Negative amounts go after --
  curfmt format --locale en-US --currency USD -- -5 0 1234.5

  # Euro for German, as JSON
  curfmt format --locale de-DE --currency EUR --output json 1234.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cmd, args)
		},
	}
}

func (a *app) runFormat(cmd *cobra.Command, args []string) error {
	amounts := make([]money.Money, 0, len(args))
	for _, arg := range args {
		m, err := money.NewMoneyFromString(arg)
		if err != nil {
			return err
		}
		amounts = append(amounts, m)
	}

	f, err := a.formatter()
	if err != nil {
		return err
	}

	report := &output.Report{
		Locale:   a.config.Locale,
		Currency: a.config.Currency,
		Symbol:   f.Symbol(),
		Strategy: a.config.Strategy,
		Results:  make([]output.Result, 0, len(amounts)),
	}
	for _, m := range amounts {
		report.Results = append(report.Results, output.Result{
			Amount:    m.Decimal,
			Natural:   f.Natural(m.Decimal),
			Formatted: f.Format(m.Decimal),
		})
	}
	a.logger.Debug("formatted amounts", "count", len(report.Results))

	return output.Render(cmd.OutOrStdout(), report, a.config.Output)
}
