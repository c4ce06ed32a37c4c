package slot

import (
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "slot not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
)

// Slot is a declared window during which a resource is open for booking.
// It is distinct from a booking: slots say "bookable here", bookings say
// "taken here".
type Slot struct {
	ID         string
	ResourceID string
	Date       schedule.DateStamp
	Start      schedule.TimeOfDay
	End        schedule.TimeOfDay
	CreatedAt  time.Time
}

// Interval returns the slot as a scheduling-core interval.
func (s *Slot) Interval() schedule.Interval {
	return schedule.Interval{
		ResourceID: s.ResourceID,
		Date:       s.Date,
		Start:      s.Start,
		End:        s.End,
	}
}

// Filter defines parameters for listing slots.
type Filter struct {
	ResourceID string
	DateFrom   *schedule.DateStamp
	DateTo     *schedule.DateStamp
	Page       int
	PageSize   int
}
