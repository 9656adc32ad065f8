package model

import (
	"sort"
	"testing"
)

func TestPeriodKey_ZeroPadsMonth(t *testing.T) {
	p := Period{Year: 2025, Month: 3}
	if got := p.Key(); got != "2025-03" {
		t.Errorf("Key() = %q, want 2025-03", got)
	}
}

func TestPeriodKey_SortsChronologically(t *testing.T) {
	keys := []string{
		Period{Year: 2025, Month: 11}.Key(),
		Period{Year: 2025, Month: 2}.Key(),
		Period{Year: 2024, Month: 12}.Key(),
		Period{Year: 2025, Month: 10}.Key(),
	}
	sort.Strings(keys)

	want := []string{"2024-12", "2025-02", "2025-10", "2025-11"}
	for i, k := range keys {
		if k != want[i] {
			t.Fatalf("sorted keys = %v, want %v", keys, want)
		}
	}
}

func TestParsePeriodKey(t *testing.T) {
	tests := []struct {
		key  string
		want Period
		ok   bool
	}{
		{"2025-10", Period{2025, 10}, true},
		{"2025-01", Period{2025, 1}, true},
		{"1970-12", Period{1970, 12}, true},
		{"2025-00", Period{}, false},
		{"2025-13", Period{}, false},
		{"1969-06", Period{}, false},
		{"3001-01", Period{}, false},
		{"2025", Period{}, false},
		{"abcd-ef", Period{}, false},
		{"2025-1x", Period{}, false},
		{"", Period{}, false},
	}

	for _, tt := range tests {
		got, ok := ParsePeriodKey(tt.key)
		if ok != tt.ok {
			t.Errorf("ParsePeriodKey(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePeriodKey(%q) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestPeriodKeyOrCurrent_FallsBack(t *testing.T) {
	p := PeriodKeyOrCurrent("not-a-key")
	if p != CurrentPeriod() {
		t.Errorf("PeriodKeyOrCurrent fallback = %+v, want current month", p)
	}

	p = PeriodKeyOrCurrent("2025-10")
	if (p != Period{Year: 2025, Month: 10}) {
		t.Errorf("PeriodKeyOrCurrent(2025-10) = %+v", p)
	}
}

func TestPeriodOfDate(t *testing.T) {
	p, err := PeriodOfDate("2025-10-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (p != Period{Year: 2025, Month: 10}) {
		t.Errorf("PeriodOfDate = %+v, want 2025-10", p)
	}

	if _, err := PeriodOfDate("2025-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestPeriodDateFor_ClampsToMonthEnd(t *testing.T) {
	feb := Period{Year: 2025, Month: 2}
	if got := feb.DateFor(31); got != "2025-02-28" {
		t.Errorf("DateFor(31) = %q, want 2025-02-28", got)
	}
	if got := feb.DateFor(10); got != "2025-02-10" {
		t.Errorf("DateFor(10) = %q, want 2025-02-10", got)
	}
}

func TestPeriodPrevNext_WrapsYear(t *testing.T) {
	jan := Period{Year: 2025, Month: 1}
	if got := jan.Prev(); got != (Period{Year: 2024, Month: 12}) {
		t.Errorf("Prev() = %v", got)
	}
	dec := Period{Year: 2025, Month: 12}
	if got := dec.Next(); got != (Period{Year: 2026, Month: 1}) {
		t.Errorf("Next() = %v", got)
	}
	oct := Period{Year: 2025, Month: 10}
	if got := oct.Next().Prev(); got != oct {
		t.Errorf("Next().Prev() = %v, want %v", got, oct)
	}
}
