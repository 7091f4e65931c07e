package intl

import "errors"

var (
	// ErrUnsupportedLocale is returned when a locale tag is empty or not well-formed BCP 47.
	ErrUnsupportedLocale = errors.New("unsupported locale tag")
	// ErrUnsupportedCurrency is returned when a currency code is not a recognized ISO 4217 code.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)
