package http

import (
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/booking"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

type CreateBookingRequest struct {
	ResourceID    string `json:"resource_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Title         string `json:"title" binding:"required,max=200"`
	Description   string `json:"description" binding:"max=2000"`
	AttendeeName  string `json:"attendee_name" binding:"max=100"`
	AttendeeEmail string `json:"attendee_email" binding:"omitempty,email"`
	AttendeePhone string `json:"attendee_phone" binding:"max=30"`
	Priority      string `json:"priority"`
}

// Parse converts the wire form into a service request. Time validation
// beyond format (ordering, policy) is the service's job.
func (r CreateBookingRequest) Parse(createdBy string, now time.Time) (booking.CreateRequest, error) {
	date, err := schedule.ParseDateStamp(r.Date)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := schedule.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	return booking.CreateRequest{
		ResourceID:    r.ResourceID,
		Date:          date,
		Start:         start,
		End:           end,
		Title:         r.Title,
		Description:   r.Description,
		AttendeeName:  r.AttendeeName,
		AttendeeEmail: r.AttendeeEmail,
		AttendeePhone: r.AttendeePhone,
		Priority:      booking.Priority(r.Priority),
		CreatedBy:     createdBy,
		Now:           now,
	}, nil
}

type UpdateBookingRequest struct {
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Status      *string `json:"status"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Priority    *string `json:"priority"`
}

func (r UpdateBookingRequest) Parse(now time.Time) (booking.UpdateRequest, error) {
	req := booking.UpdateRequest{
		Status:      r.Status,
		Title:       r.Title,
		Description: r.Description,
		Now:         now,
	}

	if r.Date != nil {
		d, err := schedule.ParseDateStamp(*r.Date)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.Date = &d
	}
	if r.StartTime != nil {
		t, err := schedule.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.Start = &t
	}
	if r.EndTime != nil {
		t, err := schedule.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.End = &t
	}
	if r.Priority != nil {
		p := booking.Priority(*r.Priority)
		req.Priority = &p
	}

	return req, nil
}

type ListBookingsRequest struct {
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	CreatedBy  string `form:"created_by" binding:"omitempty,uuid"`
	Status     string `form:"status"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Search     string `form:"search" binding:"max=100"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type CalendarRequest struct {
	Year  int `form:"year" binding:"required,min=1970,max=2200"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type AvailabilityRequest struct {
	ResourceID string `form:"resource_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
}

type UtilizationRequest struct {
	ResourceID    string  `form:"resource_id" binding:"required,uuid"`
	Date          string  `form:"date" binding:"required,datetime=2006-01-02"`
	CapacityHours float64 `form:"capacity_hours" binding:"omitempty,gt=0"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	ResourceID    string `json:"resource_id"`
	ResourceName  string `json:"resource_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	AttendeeName  string `json:"attendee_name,omitempty"`
	AttendeeEmail string `json:"attendee_email,omitempty"`
	AttendeePhone string `json:"attendee_phone,omitempty"`
	Priority      string `json:"priority"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ResourceID:    b.ResourceID,
		ResourceName:  b.ResourceName,
		Date:          b.Date.String(),
		StartTime:     b.Start.String(),
		EndTime:       b.End.String(),
		Status:        string(b.Status),
		Title:         b.Title,
		Description:   b.Description,
		AttendeeName:  b.AttendeeName,
		AttendeeEmail: b.AttendeeEmail,
		AttendeePhone: b.AttendeePhone,
		Priority:      string(b.Priority),
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

// IntervalResponse is a bare time window, used for conflicts and free slots.
type IntervalResponse struct {
	ResourceID string `json:"resource_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func NewIntervalResponses(intervals []schedule.Interval) []IntervalResponse {
	out := make([]IntervalResponse, len(intervals))
	for i, iv := range intervals {
		out[i] = IntervalResponse{
			ResourceID: iv.ResourceID,
			Date:       iv.Date.String(),
			StartTime:  iv.Start.String(),
			EndTime:    iv.End.String(),
		}
	}
	return out
}

// MutationResponse pairs a booking with the advisory conflict list.
type MutationResponse struct {
	Booking   BookingResponse    `json:"booking"`
	Conflicts []IntervalResponse `json:"conflicts"`
}

func NewMutationResponse(b *booking.Booking, conflicts []schedule.Interval) MutationResponse {
	out := MutationResponse{
		Booking:   NewBookingResponse(b),
		Conflicts: NewIntervalResponses(conflicts),
	}
	if out.Conflicts == nil {
		out.Conflicts = []IntervalResponse{}
	}
	return out
}

type DayCellResponse struct {
	Date           string `json:"date"`
	InCurrentMonth bool   `json:"in_current_month"`
	IsToday        bool   `json:"is_today"`
	BookingCount   int    `json:"booking_count"`
	SlotCount      int    `json:"slot_count"`
	Available      bool   `json:"available"`
}

type CalendarResponse struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Cells []DayCellResponse `json:"cells"`
}

func NewCalendarResponse(year int, month time.Month, cells []schedule.DayCell) CalendarResponse {
	out := CalendarResponse{
		Year:  year,
		Month: int(month),
		Cells: make([]DayCellResponse, len(cells)),
	}
	for i, c := range cells {
		out.Cells[i] = DayCellResponse{
			Date:           c.Date.String(),
			InCurrentMonth: c.InCurrentMonth,
			IsToday:        c.IsToday,
			BookingCount:   c.BookingCount,
			SlotCount:      c.SlotCount,
			Available:      c.Available,
		}
	}
	return out
}

type UtilizationResponse struct {
	ResourceID    string  `json:"resource_id"`
	Date          string  `json:"date"`
	CapacityHours float64 `json:"capacity_hours"`
	Percentage    int     `json:"percentage"`
}

type ResourceStatsResponse struct {
	ResourceID   string  `json:"resource_id"`
	ResourceName string  `json:"resource_name"`
	Bookings     int     `json:"bookings"`
	BookedHours  float64 `json:"booked_hours"`
	Utilization  int     `json:"utilization"`
}

type StatsResponse struct {
	Year        int                     `json:"year"`
	Month       int                     `json:"month"`
	Total       int                     `json:"total"`
	Pending     int                     `json:"pending"`
	Confirmed   int                     `json:"confirmed"`
	Cancelled   int                     `json:"cancelled"`
	Completed   int                     `json:"completed"`
	BookedHours float64                 `json:"booked_hours"`
	Resources   []ResourceStatsResponse `json:"resources"`
}

func NewStatsResponse(s *booking.Stats) StatsResponse {
	out := StatsResponse{
		Year:        s.Year,
		Month:       int(s.Month),
		Total:       s.Total,
		Pending:     s.Pending,
		Confirmed:   s.Confirmed,
		Cancelled:   s.Cancelled,
		Completed:   s.Completed,
		BookedHours: s.BookedHours,
		Resources:   make([]ResourceStatsResponse, len(s.Resources)),
	}
	for i, rs := range s.Resources {
		out.Resources[i] = ResourceStatsResponse{
			ResourceID:   rs.ResourceID,
			ResourceName: rs.ResourceName,
			Bookings:     rs.Bookings,
			BookedHours:  rs.BookedHours,
			Utilization:  rs.Utilization,
		}
	}
	return out
}
