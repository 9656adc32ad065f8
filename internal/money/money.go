// Package money formats scaled UZS amounts for display. Amounts
// throughout ledgerly are stored in thousands of UZS ("k UZS").
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit selects the display unit for amounts.
type Unit string

const (
	// UnitCompact renders the scaled value with one fractional digit
	// and a "k UZS" suffix, e.g. 1500 -> "1,500.0k UZS".
	UnitCompact Unit = "k"
	// UnitFull renders the base-unit value as an integer,
	// e.g. 1500 -> "1,500,000 UZS".
	UnitFull Unit = "full"
)

// Scale is the factor between the stored unit and base UZS.
var Scale = decimal.NewFromInt(1000)

// ParseUnit maps a stored string to a Unit, defaulting to compact.
func ParseUnit(s string) Unit {
	if Unit(s) == UnitFull {
		return UnitFull
	}
	return UnitCompact
}

// Format renders an amount under the given unit.
func Format(amount decimal.Decimal, unit Unit) string {
	if unit == UnitFull {
		return FormatFull(amount)
	}
	return FormatK(amount)
}

// FormatK renders the scaled amount with exactly one fractional digit.
func FormatK(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + group(amount.Abs().StringFixed(1)) + "k UZS"
}

// FormatFull multiplies by the scale factor and renders a whole base-unit count.
func FormatFull(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	full := amount.Abs().Mul(Scale).Round(0)
	return sign + group(full.StringFixed(0)) + " UZS"
}

// Parse reads a user-typed amount, accepting "," as a decimal separator.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("money: parsing amount %q: %w", s, err)
	}
	return d, nil
}

// group inserts comma separators into the integer part of a plain
// non-negative decimal string.
func group(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var b strings.Builder
		remainder := len(intPart) % 3
		if remainder > 0 {
			b.WriteString(intPart[:remainder])
		}
		for i := remainder; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if hasFrac {
		return intPart + "." + fracPart
	}
	return intPart
}
