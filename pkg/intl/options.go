package intl

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Display selects how the currency is shown.
type Display int

const (
	// DisplaySymbol uses the locale's standard symbol, e.g. "$" or "US$".
	DisplaySymbol Display = iota
	// DisplayNarrowSymbol uses the narrow symbol, e.g. "$" for any dollar.
	DisplayNarrowSymbol
	// DisplayCode uses the ISO 4217 code, e.g. "USD".
	DisplayCode
)

var displayNames = map[Display]string{
	DisplaySymbol:       "symbol",
	DisplayNarrowSymbol: "narrowSymbol",
	DisplayCode:         "code",
}

func (d Display) String() string {
	if n, ok := displayNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Display(%d)", int(d))
}

// ParseDisplay accepts "symbol", "narrowSymbol" (or "narrow") and "code", case-insensitively.
func ParseDisplay(s string) (Display, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "symbol":
		return DisplaySymbol, nil
	case "narrowsymbol", "narrow":
		return DisplayNarrowSymbol, nil
	case "code", "iso":
		return DisplayCode, nil
	}
	return DisplaySymbol, fmt.Errorf("unknown currency display %q", s)
}

func (d Display) formatter() currency.Formatter {
	switch d {
	case DisplayNarrowSymbol:
		return currency.NarrowSymbol
	case DisplayCode:
		return currency.ISO
	default:
		return currency.Symbol
	}
}

// Rounding selects which fraction digits and increment apply to a currency.
type Rounding int

const (
	// RoundingStandard uses the currency's standard digits (USD: 2, JPY: 0).
	RoundingStandard Rounding = iota
	// RoundingCash uses the cash digits and increment (CHF: 0.05 steps).
	RoundingCash
)

func (r Rounding) String() string {
	if r == RoundingCash {
		return "cash"
	}
	return "standard"
}

// ParseRounding accepts "standard" and "cash", case-insensitively.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return RoundingStandard, nil
	case "cash":
		return RoundingCash, nil
	}
	return RoundingStandard, fmt.Errorf("unknown rounding %q", s)
}

func (r Rounding) kind() currency.Kind {
	if r == RoundingCash {
		return currency.Cash
	}
	return currency.Standard
}

// Options configures a currency-style NumberFormat.
type Options struct {
	// Currency is the ISO 4217 code; case-insensitive.
	Currency string
	Display  Display
	Rounding Rounding
}

// ResolvedOptions reports what a NumberFormat actually uses after parsing.
type ResolvedOptions struct {
	Locale    string
	Currency  string
	Display   Display
	Rounding  Rounding
	Scale     int
	Increment int
}
