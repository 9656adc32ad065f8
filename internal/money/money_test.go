package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestFormatK(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500", "1,500.0k UZS"},
		{"64.4", "64.4k UZS"},
		{"-64.4", "-64.4k UZS"},
		{"0", "0.0k UZS"},
		{"-480", "-480.0k UZS"},
		{"1234567.89", "1,234,567.9k UZS"},
	}
	for _, tt := range tests {
		if got := FormatK(dec(t, tt.in)); got != tt.want {
			t.Errorf("FormatK(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFull(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500", "1,500,000 UZS"},
		{"64.4", "64,400 UZS"},
		{"-64.4", "-64,400 UZS"},
		{"0", "0 UZS"},
		{"0.0005", "1 UZS"},
	}
	for _, tt := range tests {
		if got := FormatFull(dec(t, tt.in)); got != tt.want {
			t.Errorf("FormatFull(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_UnitSelection(t *testing.T) {
	amt := dec(t, "1500")
	if got := Format(amt, UnitCompact); got != "1,500.0k UZS" {
		t.Errorf("compact = %q", got)
	}
	if got := Format(amt, UnitFull); got != "1,500,000 UZS" {
		t.Errorf("full = %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	if ParseUnit("full") != UnitFull {
		t.Error(`ParseUnit("full") != UnitFull`)
	}
	if ParseUnit("k") != UnitCompact {
		t.Error(`ParseUnit("k") != UnitCompact`)
	}
	if ParseUnit("garbage") != UnitCompact {
		t.Error("unknown unit should default to compact")
	}
}

func TestParse_CommaSeparator(t *testing.T) {
	d, err := Parse("120,5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(dec(t, "120.5")) {
		t.Errorf("Parse(120,5) = %s, want 120.5", d)
	}

	if _, err := Parse("not a number"); err == nil {
		t.Error("expected error for junk input")
	}
}
