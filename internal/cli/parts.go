package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/rpgo/curfmt/internal/output"
	money "github.com/rpgo/curfmt/pkg/decimal"
	"github.com/rpgo/curfmt/pkg/intl"
)

func newPartsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parts AMOUNT",
		Short: "Show the typed parts of the locale's natural rendering",
		Example: `  curfmt parts --locale de-DE --currency EUR 1234.5
  curfmt parts --output json -- -5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParts(cmd, args[0])
		},
	}
}

func (a *app) runParts(cmd *cobra.Command, arg string) error {
	m, err := money.NewMoneyFromString(arg)
	if err != nil {
		return err
	}
	display, err := intl.ParseDisplay(a.config.Display)
	if err != nil {
		return err
	}
	rounding, err := intl.ParseRounding(a.config.Rounding)
	if err != nil {
		return err
	}
	nf, err := intl.NewNumberFormat(a.config.Locale, intl.Options{
		Currency: a.config.Currency,
		Display:  display,
		Rounding: rounding,
	})
	if err != nil {
		return err
	}
	parts := nf.FormatToParts(m.Decimal)

	w := cmd.OutOrStdout()
	if output.NormalizeFormatName(a.config.Output) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(parts)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"#", "Type", "Value"})
	for i, p := range parts {
		t.AppendRow(table.Row{i, string(p.Type), strconv.Quote(p.Value)})
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
