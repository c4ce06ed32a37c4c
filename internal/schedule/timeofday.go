// Package schedule holds the pure scheduling math shared by the booking
// modules: interval conflict detection, month grid building, utilization and
// list derivation. Everything here is a plain function over its arguments;
// there is no clock, no storage and no shared state, so the package is safe
// to call from any goroutine.
package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeOfDay = errors.New("time of day out of range")

// TimeOfDay is a wall-clock time within a single day. It carries no date and
// no time zone; ordering is by total minutes since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates the hour/minute pair and returns the value.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". Seconds are accepted for
// compatibility with postgres time columns and discarded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
		}
	}
	return NewTimeOfDay(h, m)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
