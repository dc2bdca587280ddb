// Package money provides exact decimal money arithmetic on integer cents.
//
// Monetary values are exchanged as 2-decimal JSON numbers and stored as int64
// cents, so addition and multiplication by counts are exact. Only the
// per-item display figure uses a higher (4-decimal) scale.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// ErrInvalidAmount is returned when a decimal string cannot be parsed as money.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// FromCents creates an Amount from a cent count.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// Parse converts a decimal string like "20.95" into an Amount.
// At most two fractional digits are accepted.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	// Only bare digits are allowed past the leading sign; ParseInt alone
	// would let a second sign slip through.
	if !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents64, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	total := units*100 + cents64
	if negative {
		total = -total
	}
	return Amount(total), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse converts a decimal string into an Amount, panicking on error.
// Intended for test fixtures and constants.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: cannot parse %q", s))
	}
	return a
}

// Cents returns the amount as a cent count.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Add returns the exact sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// MulInt returns the amount multiplied by an integer count.
func (a Amount) MulInt(n int) Amount {
	return a * Amount(n)
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// String formats the amount with two decimal places, e.g. "20.95".
func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// PerItem returns the price of a single item inside a bundle of the given
// size, formatted at 4-decimal scale with half-up rounding. Display only;
// totals are never derived from this figure.
func (a Amount) PerItem(bundleSize int) string {
	if bundleSize <= 0 {
		return a.String() + "00"
	}
	// 1e-4 dollar units: cents * 100 / bundleSize, rounded half-up.
	n := int64(a) * 100
	d := int64(bundleSize)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	units := (2*n + d) / (2 * d)
	return fmt.Sprintf("%s%d.%04d", sign, units/10000, units%10000)
}

// MarshalJSON encodes the amount as a bare 2-decimal JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
