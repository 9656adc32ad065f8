package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
)

func TestFormatMonth(t *testing.T) {
	got := FormatMonth(model.Period{Year: 2025, Month: 10})
	if got != "October 2025" {
		t.Errorf("FormatMonth() = %q, want %q", got, "October 2025")
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "0%"},
		{80.4, "80%"},
		{128.8, "129%"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.pct); got != c.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	pos := FormatSigned(decimal.RequireFromString("1500"), money.UnitCompact)
	if pos != "+1,500.0k UZS" {
		t.Errorf("FormatSigned(1500) = %q", pos)
	}
	neg := FormatSigned(decimal.RequireFromString("-64.4"), money.UnitCompact)
	if neg != "-64.4k UZS" {
		t.Errorf("FormatSigned(-64.4) = %q", neg)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a longer title", 8); got != "a longe…" {
		t.Errorf("Truncate() = %q", got)
	}
}
