package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string such as "-1234.50"
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Money{d}, nil
}

// RoundTo rounds the amount to scale fractional digits, half away from zero
func (m Money) RoundTo(scale int) Money {
	return Money{m.Decimal.Round(int32(scale))}
}

// RoundIncrement rounds to the nearest multiple of increment units of 10^-scale.
// Cash rounding for CHF is RoundIncrement(2, 5): 0.05 steps.
func (m Money) RoundIncrement(scale, increment int) Money {
	if increment <= 1 {
		return m.RoundTo(scale)
	}
	step := decimal.New(int64(increment), -int32(scale))
	return Money{m.Decimal.Div(step).Round(0).Mul(step).Round(int32(scale))}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Neg returns the negated amount
func (m Money) Neg() Money {
	return Money{m.Decimal.Neg()}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Float64 returns the nearest float64; exact is false when precision was lost
func (m Money) Float64() (f float64, exact bool) {
	return m.Decimal.Float64()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// StringFixed returns the amount with exactly scale fractional digits
func (m Money) StringFixed(scale int) string {
	return m.Decimal.StringFixed(int32(scale))
}

// String returns the plain decimal representation with two fractional digits
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
