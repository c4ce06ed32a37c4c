package schedule

import (
	"fmt"
	"time"
)

// DateStamp is a plain calendar date with no time-of-day and no time zone.
// Two stamps compare by (year, month, day).
type DateStamp struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) DateStamp {
	return DateStamp{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDateStamp parses "YYYY-MM-DD".
func ParseDateStamp(s string) (DateStamp, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateStamp{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the stamp as midnight UTC, for handing to the persistence layer.
func (d DateStamp) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d DateStamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or 1 ordering d against other.
func (d DateStamp) Compare(other DateStamp) int {
	a := d.Year*10000 + int(d.Month)*100 + d.Day
	b := other.Year*10000 + int(other.Month)*100 + other.Day
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d DateStamp) Before(other DateStamp) bool {
	return d.Compare(other) < 0
}
