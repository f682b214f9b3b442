package money

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// minorExp is the exponent of one minor unit (paise) relative to a rupee.
const minorExp = -2

// Amount is a monetary value in minor units. Arithmetic stays in integers;
// decimal and float views exist only for rates and presentation.
type Amount int64

// Rupees returns a whole-unit amount.
func Rupees(units int64) Amount {
	return Amount(units * 100)
}

// ErrOverflow reports a result that does not fit in an Amount.
var ErrOverflow = errors.New("amount out of range")

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// fromMinor rounds a minor-unit decimal half away from zero and checks it
// against the int64 range.
func fromMinor(d decimal.Decimal) (Amount, error) {
	d = d.Round(0)
	if d.GreaterThan(maxMinor) || d.LessThan(minMinor) {
		return 0, ErrOverflow
	}
	return Amount(d.IntPart()), nil
}

// FromDecimal converts a major-unit decimal, rounding half away from zero
// to the nearest minor unit.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	return fromMinor(d.Shift(-minorExp))
}

// Parse reads a major-unit string such as "1200" or "499.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a, err := FromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return a, nil
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), minorExp)
}

// Float64 is for display only.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// Times multiplies by a quantity. It fails with ErrOverflow instead of
// wrapping.
func (a Amount) Times(n int) (Amount, error) {
	return fromMinor(decimal.NewFromInt(int64(a)).Mul(decimal.NewFromInt(int64(n))))
}

func (a Amount) Plus(b Amount) (Amount, error) {
	return fromMinor(decimal.NewFromInt(int64(a)).Add(decimal.NewFromInt(int64(b))))
}

// MulRate applies a decimal rate, rounding to the nearest minor unit.
func (a Amount) MulRate(rate decimal.Decimal) (Amount, error) {
	return fromMinor(decimal.NewFromInt(int64(a)).Mul(rate))
}

// String renders the amount with two decimal places.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// MarshalJSON writes a bare JSON number with two decimal places.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted number. null decodes to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*a = v
	return nil
}
