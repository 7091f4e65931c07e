package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func buildTestReport() *Report {
	return &Report{
		Locale:   "en-US",
		Currency: "USD",
		Symbol:   "$",
		Strategy: "strip",
		Results: []Result{
			{Amount: decimal.NewFromFloat(1234.5), Natural: "$ 1,234.50", Formatted: "$1,234.50"},
			{Amount: decimal.NewFromInt(-5), Natural: "$ -5.00", Formatted: "$-5.00"},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"Amount", "Natural", "Formatted", "$1,234.50", "$-5.00"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output, got: %s", want, content)
		}
	}
	if strings.Contains(content, "AMOUNT") {
		t.Fatalf("header should keep its case, got: %s", content)
	}

	caption := `en-US USD, symbol "$", strategy strip`
	found := false
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == caption {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected caption line %q, got: %s", caption, content)
	}
}

func TestPlainFormatter(t *testing.T) {
	out, err := PlainFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(out); got != "$1,234.50\n$-5.00\n" {
		t.Fatalf("plain output = %q", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Symbol  string `json:"symbol"`
		Results []struct {
			Amount    string `json:"amount"`
			Formatted string `json:"formatted"`
		} `json:"results"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Symbol != "$" || len(decoded.Results) != 2 {
		t.Fatalf("unexpected report: %+v", decoded)
	}
	if decoded.Results[1].Amount != "-5" || decoded.Results[1].Formatted != "$-5.00" {
		t.Fatalf("unexpected second result: %+v", decoded.Results[1])
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "1234.5" || rows[1][4] != "$1,234.50" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console":     "console",
		" TABLE ":     "console",
		"text":        "console",
		"json-pretty": "json",
		"csv":         "csv",
		"lines":       "plain",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", in, f, want)
		}
	}
	if GetFormatterByName("xml") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestAvailableNames(t *testing.T) {
	if got := strings.Join(AvailableFormatterNames(), ","); got != "console,csv,json,plain" {
		t.Fatalf("AvailableFormatterNames = %s", got)
	}
	if got := strings.Join(AvailableFormatAliases(), ","); got != "json-pretty,lines,table,text" {
		t.Fatalf("AvailableFormatAliases = %s", got)
	}
}

func TestFormatterFunc(t *testing.T) {
	ff := FormatterFunc{ID: "count", F: func(r *Report) ([]byte, error) {
		return []byte{byte('0' + len(r.Results))}, nil
	}}
	out, err := ff.Format(buildTestReport())
	if err != nil || string(out) != "2" || ff.Name() != "count" {
		t.Fatalf("FormatterFunc = %q, %v", out, err)
	}
}
