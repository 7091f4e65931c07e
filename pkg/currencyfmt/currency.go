// Package currencyfmt formats amounts as localized currency strings with the
// currency symbol always in front of the number, whatever the locale's own
// placement.
//
//	s, err := currencyfmt.FormatFloat(-5, currencyfmt.WithLocale("en-US"), currencyfmt.WithCurrency("USD"))
//	// s == "$-5.00"
//
// A negative amount that rounds to zero keeps its sign: -0.001 USD is
// "$-0.00".
package currencyfmt

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/curfmt/pkg/intl"
)

var (
	ErrUnsupportedLocale   = intl.ErrUnsupportedLocale
	ErrUnsupportedCurrency = intl.ErrUnsupportedCurrency
)

// NumberFormat is the locale-aware formatter the symbol is rearranged from.
// *intl.NumberFormat implements it.
type NumberFormat interface {
	Format(amount decimal.Decimal) string
	FormatToParts(amount decimal.Decimal) []intl.Part
}

// Formatter renders amounts symbol-first. It is immutable and safe for
// concurrent use when its NumberFormat is.
type Formatter struct {
	nf       NumberFormat
	symbol   string
	strategy Strategy
	logger   Logger
}

// New builds a Formatter. Without options it formats PHP for en-PH.
func New(opts ...Option) (*Formatter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nf := o.nf
	if nf == nil {
		f, err := intl.NewNumberFormat(o.locale, intl.Options{
			Currency: o.currency,
			Display:  o.display,
			Rounding: o.rounding,
		})
		if err != nil {
			return nil, err
		}
		nf = f
	}

	symbol := ""
	if p, ok := intl.Find(nf.FormatToParts(decimal.Zero), intl.PartCurrency); ok {
		symbol = p.Value
	}
	o.logger.Debugf("currency symbol %q resolved for locale=%s currency=%s strategy=%s", symbol, o.locale, o.currency, o.strategy)

	return &Formatter{
		nf:       nf,
		symbol:   symbol,
		strategy: o.strategy,
		logger:   o.logger,
	}, nil
}

// Symbol returns the currency symbol placed in front, possibly empty.
func (f *Formatter) Symbol() string {
	return f.symbol
}

// Natural returns the underlying locale rendering before rearrangement.
func (f *Formatter) Natural(amount decimal.Decimal) string {
	return f.nf.Format(amount)
}

// Format renders amount with the symbol first.
func (f *Formatter) Format(amount decimal.Decimal) string {
	var rest string
	switch f.strategy {
	case Reassemble:
		rest = withoutCurrency(f.nf.FormatToParts(amount))
	default:
		rest = stripFirst(f.nf.Format(amount), f.symbol)
	}
	return f.symbol + rest
}

// FormatFloat renders a float64 amount with the symbol first.
func (f *Formatter) FormatFloat(amount float64) string {
	return f.Format(decimal.NewFromFloat(amount))
}

// FormatCurrency formats amount in one call. Construction errors, such as
// an unknown currency code, are returned unchanged.
func FormatCurrency(amount decimal.Decimal, opts ...Option) (string, error) {
	f, err := New(opts...)
	if err != nil {
		return "", err
	}
	return f.Format(amount), nil
}

// FormatFloat is FormatCurrency for float64 amounts.
func FormatFloat(amount float64, opts ...Option) (string, error) {
	return FormatCurrency(decimal.NewFromFloat(amount), opts...)
}

// stripFirst removes only the first occurrence of symbol. If the symbol text
// also occurs inside the digits and comes first, a fragment is left behind.
func stripFirst(natural, symbol string) string {
	if symbol != "" {
		natural = strings.Replace(natural, symbol, "", 1)
	}
	return strings.TrimSpace(natural)
}

func withoutCurrency(parts []intl.Part) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Type == intl.PartCurrency {
			continue
		}
		if p.Type == intl.PartLiteral && strings.TrimSpace(p.Value) == "" {
			continue
		}
		b.WriteString(p.Value)
	}
	return strings.TrimSpace(b.String())
}
