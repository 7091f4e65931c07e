package intl

import (
	"strings"
	"unicode"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberSymbols holds the locale's digits and separators, read back from
// x/text renderings of sample values at construction time.
type numberSymbols struct {
	digits      [10]string
	decimal     string
	group       string
	minusPrefix string
	minusSuffix string
}

func localeSymbols(p *message.Printer) numberSymbols {
	var s numberSymbols
	for i := range s.digits {
		s.digits[i] = p.Sprint(number.Decimal(int64(i)))
	}
	s.decimal = firstSeparator(p.Sprint(number.Decimal(1.5, number.Scale(1))), ".")
	s.group = firstSeparator(p.Sprint(number.Decimal(int64(1234567))), "")
	minus := p.Sprint(number.Decimal(int64(-1)))
	if i := strings.Index(minus, s.digits[1]); i >= 0 {
		s.minusPrefix = minus[:i]
		s.minusSuffix = minus[i+len(s.digits[1]):]
	} else {
		s.minusPrefix = "-"
	}
	return s
}

// firstSeparator returns the first non-digit run between two digit runs.
func firstSeparator(rendered, fallback string) string {
	start := strings.IndexFunc(rendered, unicode.IsDigit)
	if start < 0 {
		return fallback
	}
	rest := rendered[start:]
	sepStart := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
	if sepStart < 0 {
		return fallback
	}
	rest = rest[sepStart:]
	sepEnd := strings.IndexFunc(rest, unicode.IsDigit)
	if sepEnd <= 0 {
		return fallback
	}
	return rest[:sepEnd]
}

// localize maps ASCII digits to the locale's digits.
func (s numberSymbols) localize(ascii string) string {
	var b strings.Builder
	for _, r := range ascii {
		if r >= '0' && r <= '9' {
			b.WriteString(s.digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// groupThousands groups ASCII digits in threes with the locale separator.
// Only used for integers beyond int64, which x/text cannot render exactly.
func (s numberSymbols) groupThousands(ascii string) string {
	var b strings.Builder
	lead := len(ascii) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s.localize(ascii[:lead]))
	for i := lead; i < len(ascii); i += 3 {
		b.WriteString(s.group)
		b.WriteString(s.localize(ascii[i : i+3]))
	}
	return b.String()
}
