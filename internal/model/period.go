package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period identifies one calendar month.
type Period struct {
	Year  int
	Month int // 1-12
}

// Key returns the canonical "YYYY-MM" grouping key. The zero-padded month
// makes lexicographic order match chronological order.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// IsZero reports whether p is the zero period.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Prev returns the preceding month.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Next returns the following month.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// CurrentPeriod returns the period of the local current month.
func CurrentPeriod() Period {
	return PeriodOf(time.Now())
}

// PeriodOfDate derives the period from a YYYY-MM-DD date string.
func PeriodOfDate(date string) (Period, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Period{}, fmt.Errorf("model: parsing date %q: %w", date, err)
	}
	return PeriodOf(t), nil
}

// ParsePeriodKey parses a "YYYY-MM" key back into a period. Keys with
// non-integer components, months outside 1-12, or years outside
// 1970-3000 are rejected.
func ParsePeriodKey(key string) (Period, bool) {
	yearPart, monthPart, found := strings.Cut(key, "-")
	if !found {
		return Period{}, false
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return Period{}, false
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return Period{}, false
	}
	if year < 1970 || year > 3000 || month < 1 || month > 12 {
		return Period{}, false
	}
	return Period{Year: year, Month: month}, true
}

// PeriodKeyOrCurrent parses key, falling back to the current calendar
// month when the key is invalid.
func PeriodKeyOrCurrent(key string) Period {
	if p, ok := ParsePeriodKey(key); ok {
		return p
	}
	return CurrentPeriod()
}

// DaysIn returns the number of days in the period's month.
func (p Period) DaysIn() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateFor returns a YYYY-MM-DD date string for the given day of the
// period, clamped to the month's last day.
func (p Period) DateFor(day int) string {
	if last := p.DaysIn(); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, day)
}
