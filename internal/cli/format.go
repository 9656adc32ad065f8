// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
)

// FormatDate formats a YYYY-MM-DD transaction date for table rows.
// e.g., "Oct 03". Unparseable dates pass through unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02")
}

// FormatMonth formats a period heading.
// e.g., "October 2025"
func FormatMonth(p model.Period) string {
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}

// FormatPercent formats a budget usage percentage, rounded to a whole
// number. The value may exceed 100.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(pct))
}

// FormatSigned formats an amount with an explicit sign, for net and
// per-transaction columns.
func FormatSigned(d decimal.Decimal, unit money.Unit) string {
	if d.IsNegative() {
		return money.Format(d, unit)
	}
	return "+" + money.Format(d, unit)
}

// Truncate shortens a string to at most n runes, appending an ellipsis
// when anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
