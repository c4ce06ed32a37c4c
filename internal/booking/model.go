package booking

import (
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidPriority    = apperror.New(http.StatusBadRequest, "invalid booking priority")
	ErrResourceNotFound   = apperror.New(http.StatusNotFound, "resource not found")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "permission denied")
	ErrStartTimePast      = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrBookingTooShort    = apperror.New(http.StatusBadRequest, "booking is shorter than the resource minimum")
	ErrBookingTooLong     = apperror.New(http.StatusBadRequest, "booking is longer than the resource maximum")
	ErrInsufficientNotice = apperror.New(http.StatusBadRequest, "booking does not meet the advance notice requirement")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is a known priority level.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Booking is a reservation of one resource for a same-day half-open time
// window. Overlapping bookings are legal: conflicts are reported to the
// caller at create/update time, never enforced.
type Booking struct {
	ID           string
	ResourceID   string
	ResourceName string
	Date         schedule.DateStamp
	Start        schedule.TimeOfDay
	End          schedule.TimeOfDay
	Status       schedule.Status
	Title        string
	Description  string

	AttendeeName  string
	AttendeeEmail string
	AttendeePhone string

	Priority  Priority
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booking's time window as a scheduling-core interval.
func (b *Booking) Interval() schedule.Interval {
	return schedule.Interval{
		ResourceID: b.ResourceID,
		Date:       b.Date,
		Start:      b.Start,
		End:        b.End,
	}
}

// Entry returns the booking as a status-annotated scheduling-core entry.
func (b *Booking) Entry() schedule.Entry {
	return schedule.Entry{Interval: b.Interval(), Status: b.Status}
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ResourceID string
	CreatedBy  string
	Status     string
	DateFrom   *schedule.DateStamp
	DateTo     *schedule.DateStamp
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
