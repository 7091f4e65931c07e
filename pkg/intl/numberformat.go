// Package intl renders currency amounts with locale conventions, both as a
// single string and as a sequence of typed parts.
package intl

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	money "github.com/rpgo/curfmt/pkg/decimal"
)

// NumberFormat formats amounts of one currency for one locale.
// It is immutable and safe for concurrent use.
type NumberFormat struct {
	tag       language.Tag
	unit      currency.Unit
	display   Display
	rounding  Rounding
	scale     int
	increment int
	symbol    string
	symbols   numberSymbols
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// NewNumberFormat resolves locale and currency. Malformed locale tags fail
// with ErrUnsupportedLocale, unknown codes with ErrUnsupportedCurrency.
func NewNumberFormat(locale string, opts Options) (*NumberFormat, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrUnsupportedLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedLocale, locale, err)
	}

	code := strings.ToUpper(strings.TrimSpace(opts.Currency))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedCurrency, opts.Currency, err)
	}

	scale, increment := opts.Rounding.kind().Rounding(unit)
	p := message.NewPrinter(tag)
	return &NumberFormat{
		tag:       tag,
		unit:      unit,
		display:   opts.Display,
		rounding:  opts.Rounding,
		scale:     scale,
		increment: increment,
		symbol:    p.Sprint(opts.Display.formatter()(unit)),
		symbols:   localeSymbols(p),
	}, nil
}

// Format returns the natural rendering: currency, a space, then the number.
func (f *NumberFormat) Format(amount decimal.Decimal) string {
	return Join(f.FormatToParts(amount))
}

// FormatToParts returns the natural rendering split into typed parts.
// A negative amount keeps its minus sign even when it rounds to zero
// (-0.001 USD renders as "-0.00").
func (f *NumberFormat) FormatToParts(amount decimal.Decimal) []Part {
	m := money.NewMoneyFromDecimal(amount).RoundIncrement(f.scale, f.increment)
	negative := amount.IsNegative()

	parts := []Part{
		{Type: PartCurrency, Value: f.symbol},
		{Type: PartLiteral, Value: " "},
	}
	return append(parts, splitNumber(f.renderNumber(m, negative), f.scale, negative)...)
}

// renderNumber formats the rounded amount without going through float64: the
// integer part is rendered by x/text from an int64, the fraction is copied
// from the exact decimal.
func (f *NumberFormat) renderNumber(m money.Money, negative bool) string {
	abs := m.Abs()
	intPart := abs.Decimal.Truncate(0)

	var b strings.Builder
	if negative {
		b.WriteString(f.symbols.minusPrefix)
	}
	if intPart.LessThanOrEqual(maxInt64) {
		// one printer per call; NumberFormat itself never mutates
		b.WriteString(message.NewPrinter(f.tag).Sprint(number.Decimal(intPart.IntPart())))
	} else {
		b.WriteString(f.symbols.groupThousands(intPart.String()))
	}
	if f.scale > 0 {
		fixed := abs.StringFixed(f.scale)
		b.WriteString(f.symbols.decimal)
		b.WriteString(f.symbols.localize(fixed[strings.IndexByte(fixed, '.')+1:]))
	}
	if negative {
		b.WriteString(f.symbols.minusSuffix)
	}
	return b.String()
}

// ResolvedOptions reports the locale, currency and rounding in effect.
func (f *NumberFormat) ResolvedOptions() ResolvedOptions {
	return ResolvedOptions{
		Locale:    f.tag.String(),
		Currency:  f.unit.String(),
		Display:   f.display,
		Rounding:  f.rounding,
		Scale:     f.scale,
		Increment: f.increment,
	}
}
