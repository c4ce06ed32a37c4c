package schedule

// Status is the lifecycle state of a booking. Cancelled bookings are invisible
// to all derived views (conflicts, grids, utilization).
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is one of the known booking states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Interval is a half-open [Start, End) time range for one resource on one
// date. Callers must ensure Start < End; a degenerate interval never overlaps
// anything under the strict test below, which is the desired outcome.
type Interval struct {
	ResourceID string
	Date       DateStamp
	Start      TimeOfDay
	End        TimeOfDay
}

// Overlaps reports whether two intervals on the same resource and date
// intersect. The test is strict (Start < otherEnd && otherStart < End) so
// back-to-back intervals such as [09:00,10:00) and [10:00,11:00) do not
// conflict.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.ResourceID != other.ResourceID || iv.Date != other.Date {
		return false
	}
	return iv.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < iv.End.Minutes()
}

// DurationHours returns the interval length in fractional hours.
func (iv Interval) DurationHours() float64 {
	return float64(iv.End.Minutes()-iv.Start.Minutes()) / 60.0
}

// Entry is a booked interval annotated with its booking status.
type Entry struct {
	Interval
	Status Status
}

// FindConflicts returns the subset of existing intervals that overlap the
// candidate, preserving input order. An empty result means the candidate is
// clear. The check is advisory: it reports conflicts, it does not forbid them.
func FindConflicts(candidate Interval, existing []Interval) []Interval {
	var conflicts []Interval
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}
