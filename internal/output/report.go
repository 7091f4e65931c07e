package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Result is one formatted amount.
type Result struct {
	Amount    decimal.Decimal `json:"amount"`
	// Natural is the rendering before rearrangement. It follows x/text's
	// layout (symbol, space, number) rather than the locale's usual currency
	// pattern, so a de-DE amount reads "€ 1.234,50" here.
	Natural   string          `json:"natural"`
	Formatted string          `json:"formatted"`
}

// Report collects the results of one formatter run.
type Report struct {
	Locale   string   `json:"locale"`
	Currency string   `json:"currency"`
	Symbol   string   `json:"symbol"`
	Strategy string   `json:"strategy"`
	Results  []Result `json:"results"`
}

// Render writes the report to w using the named formatter.
func Render(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
