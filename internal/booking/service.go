package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
	"github.com/ferrovale/workspace-booking-backend/internal/slot"
)

// CreateRequest carries a candidate booking. Now is the request clock,
// threaded in by the handler so the service itself never reads time.Now
// for scheduling decisions.
type CreateRequest struct {
	ResourceID  string
	Date        schedule.DateStamp
	Start       schedule.TimeOfDay
	End         schedule.TimeOfDay
	Title       string
	Description string

	AttendeeName  string
	AttendeeEmail string
	AttendeePhone string

	Priority  Priority
	CreatedBy string
	Now       time.Time
}

// UpdateRequest carries editable booking fields; nil means "unchanged".
type UpdateRequest struct {
	Date        *schedule.DateStamp
	Start       *schedule.TimeOfDay
	End         *schedule.TimeOfDay
	Status      *string
	Title       *string
	Description *string
	Priority    *Priority
	Now         time.Time
}

type Service interface {
	// Create validates and persists a booking. Conflicts with existing
	// bookings are returned alongside the created booking, not treated as
	// an error: double-booking is legal and the caller decides what to do
	// with the warning.
	Create(ctx context.Context, req CreateRequest) (*Booking, []schedule.Interval, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Booking, []schedule.Interval, error)
	Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error

	// Availability returns the free sub-windows of the resource's declared
	// slots on the given date, after subtracting non-cancelled bookings.
	Availability(ctx context.Context, resourceID string, date schedule.DateStamp) ([]schedule.Interval, error)
	// Calendar builds the month-view grid across all resources.
	Calendar(ctx context.Context, year int, month time.Month, today schedule.DateStamp) ([]schedule.DayCell, error)
	// Utilization reports booked hours for a resource/date as a percentage
	// of capacityHours (0 selects the configured default). The effective
	// capacity is returned alongside the percentage.
	Utilization(ctx context.Context, resourceID string, date schedule.DateStamp, capacityHours float64) (int, float64, error)
	Stats(ctx context.Context, year int, month time.Month) (*Stats, error)
}

type service struct {
	repo        Repository
	resService  resource.Service
	slotService slot.Service

	capacityHours float64
}

func NewService(repo Repository, resService resource.Service, slotService slot.Service, capacityHours float64) Service {
	if capacityHours <= 0 {
		capacityHours = schedule.DefaultDailyCapacityHours
	}
	return &service{
		repo:          repo,
		resService:    resService,
		slotService:   slotService,
		capacityHours: capacityHours,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, []schedule.Interval, error) {
	if !req.Start.Before(req.End) {
		return nil, nil, ErrInvalidTimeRange
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, nil, errors.New("title is required")
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !ValidPriority(req.Priority) {
		return nil, nil, ErrInvalidPriority
	}

	res, err := s.resService.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, nil, ErrResourceNotFound
		}
		return nil, nil, err
	}

	candidate := schedule.Interval{
		ResourceID: req.ResourceID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
	}

	if err := checkPolicy(res, candidate, req.Now); err != nil {
		return nil, nil, err
	}

	conflicts, err := s.findConflicts(ctx, candidate, "")
	if err != nil {
		return nil, nil, err
	}

	status := schedule.StatusConfirmed
	if res.RequiresApproval {
		status = schedule.StatusPending
	}

	b := &Booking{
		ResourceID:    req.ResourceID,
		ResourceName:  res.Name,
		Date:          req.Date,
		Start:         req.Start,
		End:           req.End,
		Status:        status,
		Title:         req.Title,
		Description:   req.Description,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		AttendeePhone: req.AttendeePhone,
		Priority:      req.Priority,
		CreatedBy:     req.CreatedBy,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, nil, err
	}

	return b, conflicts, nil
}

// checkPolicy enforces the resource's booking policy: duration bounds and
// advance notice. A zero Now skips the clock-dependent checks.
func checkPolicy(res *resource.Resource, candidate schedule.Interval, now time.Time) error {
	duration := candidate.DurationHours()
	if res.MinBookingHours > 0 && duration < float64(res.MinBookingHours) {
		return ErrBookingTooShort
	}
	if res.MaxBookingHours > 0 && duration > float64(res.MaxBookingHours) {
		return ErrBookingTooLong
	}

	if now.IsZero() {
		return nil
	}

	startAt := time.Date(candidate.Date.Year, candidate.Date.Month, candidate.Date.Day,
		candidate.Start.Hour, candidate.Start.Minute, 0, 0, time.UTC)
	if startAt.Before(now) {
		return ErrStartTimePast
	}
	if res.AdvanceNoticeHours > 0 {
		if startAt.Before(now.Add(time.Duration(res.AdvanceNoticeHours) * time.Hour)) {
			return ErrInsufficientNotice
		}
	}
	return nil
}

// findConflicts runs the advisory overlap check against the non-cancelled
// bookings of the candidate's resource and date, optionally ignoring one
// booking id (for updates).
func (s *service) findConflicts(ctx context.Context, candidate schedule.Interval, excludeID string) ([]schedule.Interval, error) {
	existing, err := s.repo.ListForResourceDate(ctx, candidate.ResourceID, candidate.Date)
	if err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(existing))
	for _, b := range existing {
		if b.Status == schedule.StatusCancelled || b.ID == excludeID {
			continue
		}
		intervals = append(intervals, b.Interval())
	}

	return schedule.FindConflicts(candidate, intervals), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Booking, []schedule.Interval, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	isOwner := b.CreatedBy == updaterID
	if !isOwner && !isSysAdmin {
		return nil, nil, ErrPermissionDenied
	}

	newDate := b.Date
	newStart := b.Start
	newEnd := b.End
	timeChanged := false

	if req.Date != nil {
		newDate = *req.Date
		timeChanged = true
	}
	if req.Start != nil {
		newStart = *req.Start
		timeChanged = true
	}
	if req.End != nil {
		newEnd = *req.End
		timeChanged = true
	}

	var conflicts []schedule.Interval

	if timeChanged {
		if !newStart.Before(newEnd) {
			return nil, nil, ErrInvalidTimeRange
		}

		candidate := schedule.Interval{
			ResourceID: b.ResourceID,
			Date:       newDate,
			Start:      newStart,
			End:        newEnd,
		}

		res, err := s.resService.GetByID(ctx, b.ResourceID)
		if err != nil {
			return nil, nil, err
		}
		if err := checkPolicy(res, candidate, req.Now); err != nil {
			return nil, nil, err
		}

		conflicts, err = s.findConflicts(ctx, candidate, b.ID)
		if err != nil {
			return nil, nil, err
		}

		b.Date = newDate
		b.Start = newStart
		b.End = newEnd
	}

	if req.Status != nil {
		st := schedule.Status(*req.Status)
		if !schedule.ValidStatus(st) {
			return nil, nil, ErrInvalidStatus
		}
		// A plain user may only cancel their own booking; approvals and
		// completion are admin transitions.
		if !isSysAdmin && st != schedule.StatusCancelled {
			return nil, nil, ErrPermissionDenied
		}
		b.Status = st
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, nil, errors.New("title is required")
		}
		b.Title = *req.Title
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Priority != nil {
		if !ValidPriority(*req.Priority) {
			return nil, nil, ErrInvalidPriority
		}
		b.Priority = *req.Priority
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, nil, err
	}

	return b, conflicts, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.CreatedBy != deleterID && !isSysAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Calendar(ctx context.Context, year int, month time.Month, today schedule.DateStamp) ([]schedule.DayCell, error) {
	bookings, err := s.repo.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotService.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, len(bookings))
	for i, b := range bookings {
		entries[i] = b.Entry()
	}
	intervals := make([]schedule.Interval, len(slots))
	for i, sl := range slots {
		intervals[i] = sl.Interval()
	}

	return schedule.MonthGrid(year, month, entries, intervals, today), nil
}

func (s *service) Utilization(ctx context.Context, resourceID string, date schedule.DateStamp, capacityHours float64) (int, float64, error) {
	if capacityHours == 0 {
		capacityHours = s.capacityHours
	}
	if capacityHours <= 0 {
		return 0, 0, schedule.ErrInvalidCapacity
	}

	if _, err := s.resService.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return 0, 0, ErrResourceNotFound
		}
		return 0, 0, err
	}

	bookings, err := s.repo.ListForResourceDate(ctx, resourceID, date)
	if err != nil {
		return 0, 0, err
	}

	entries := make([]schedule.Entry, len(bookings))
	for i, b := range bookings {
		entries[i] = b.Entry()
	}

	pct, err := schedule.Utilization(resourceID, date, entries, capacityHours)
	if err != nil {
		return 0, 0, err
	}
	return pct, capacityHours, nil
}
