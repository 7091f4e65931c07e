package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per amount.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"amount", "locale", "currency", "natural", "formatted"}); err != nil {
		return nil, err
	}
	for _, r := range report.Results {
		row := []string{r.Amount.String(), report.Locale, report.Currency, r.Natural, r.Formatted}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
