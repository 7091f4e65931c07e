package output

import (
	"bytes"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleFormatter renders a table for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	// A caption is printed on its own line; a title would be wrapped to the
	// table width.
	t.SetCaption(fmt.Sprintf("%s %s, symbol %q, strategy %s", report.Locale, report.Currency, report.Symbol, report.Strategy))
	t.AppendHeader(table.Row{"Amount", "Natural", "Formatted"})
	for _, r := range report.Results {
		t.AppendRow(table.Row{r.Amount.String(), r.Natural, r.Formatted})
	}

	var buf bytes.Buffer
	buf.WriteString(t.Render())
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PlainFormatter prints one formatted amount per line, for scripts.
type PlainFormatter struct{}

func (p PlainFormatter) Name() string { return "plain" }

func (p PlainFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range report.Results {
		buf.WriteString(r.Formatted)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
