package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a monetary amount in integer cents. All arithmetic stays in
// integer minor units so fee splits and discounts never leak fractional
// cents; conversions from floating input round half-up at two decimals.
type Money int64

// FromFloat converts a decimal amount (e.g. 1200.50) to cents, rounding
// half-up at the second decimal place.
func FromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// FromCents wraps a raw minor-unit amount.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Parse reads a decimal string such as "1200.50" or "300".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty money value")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid money value %q: %w", s, err)
	}

	return FromFloat(f), nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsPositive() bool {
	return m > 0
}

// MulRound multiplies by an arbitrary factor (a pricing modifier) and rounds
// the result half-up to the nearest cent.
func (m Money) MulRound(factor float64) Money {
	return Money(math.Round(float64(m) * factor))
}

// Percent returns pct% of the amount, rounded half-up to the nearest cent.
func (m Money) Percent(pct float64) Money {
	return Money(math.Round(float64(m) * pct / 100))
}

// ClampZero floors the amount at zero.
func (m Money) ClampZero() Money {
	if m < 0 {
		return 0
	}

	return m
}

// String renders the amount as a plain decimal with exactly two places.
func (m Money) String() string {
	sign := ""
	v := int64(m)

	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a JSON number with two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*m = 0

		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Value stores the amount as a decimal string, which Postgres NUMERIC
// columns accept without any floating detour.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan accepts NUMERIC (delivered as []byte or string by lib/pq) plus
// integer and float fallbacks.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = 0

		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}

		*m = parsed

		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}

		*m = parsed

		return nil
	case int64:
		*m = Money(v * 100)

		return nil
	case float64:
		*m = FromFloat(v)

		return nil
	default:
		return fmt.Errorf("unsupported money source type %T", src)
	}
}
