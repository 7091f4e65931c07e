package currencyfmt

import (
	"fmt"
	"strings"

	"github.com/rpgo/curfmt/pkg/intl"
)

const (
	DefaultLocale   = "en-PH"
	DefaultCurrency = "PHP"
)

// Strategy selects how the symbol is moved to the front.
type Strategy int

const (
	// StripSymbol removes the first occurrence of the symbol text from the
	// natural rendering and prepends it.
	StripSymbol Strategy = iota
	// Reassemble rebuilds the output from typed parts, dropping currency
	// parts and the whitespace around them.
	Reassemble
)

func (s Strategy) String() string {
	if s == Reassemble {
		return "reassemble"
	}
	return "strip"
}

// ParseStrategy accepts "strip" and "reassemble" (or "parts").
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strip":
		return StripSymbol, nil
	case "reassemble", "parts":
		return Reassemble, nil
	}
	return StripSymbol, fmt.Errorf("unknown strategy %q", s)
}

type options struct {
	locale   string
	currency string
	display  intl.Display
	rounding intl.Rounding
	strategy Strategy
	nf       NumberFormat
	logger   Logger
}

func defaultOptions() options {
	return options{
		locale:   DefaultLocale,
		currency: DefaultCurrency,
		display:  intl.DisplaySymbol,
		rounding: intl.RoundingStandard,
		strategy: StripSymbol,
		logger:   NopLogger{},
	}
}

// Option configures a Formatter.
type Option func(*options)

// WithLocale sets the BCP 47 locale tag.
func WithLocale(tag string) Option {
	return func(o *options) { o.locale = tag }
}

// WithCurrency sets the ISO 4217 currency code.
func WithCurrency(code string) Option {
	return func(o *options) { o.currency = code }
}

// WithDisplay selects symbol, narrow symbol or ISO code.
func WithDisplay(d intl.Display) Option {
	return func(o *options) { o.display = d }
}

// WithRounding selects standard or cash rounding.
func WithRounding(r intl.Rounding) Option {
	return func(o *options) { o.rounding = r }
}

// WithStrategy selects how the symbol is moved to the front.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithNumberFormat supplies the underlying formatter directly; locale,
// currency, display and rounding options are then ignored.
func WithNumberFormat(nf NumberFormat) Option {
	return func(o *options) { o.nf = nf }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
