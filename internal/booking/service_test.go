package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
	"github.com/ferrovale/workspace-booking-backend/internal/slot"
)

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	f.nextID++
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if filter.CreatedBy != "" && b.CreatedBy != filter.CreatedBy {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, b *Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) ListForResourceDate(_ context.Context, resourceID string, date schedule.DateStamp) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.ResourceID == resourceID && b.Date == date {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForMonth(_ context.Context, year int, month time.Month) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.Date.Year == year && b.Date.Month == month {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeResourceService struct {
	resources map[string]*resource.Resource
}

func (f *fakeResourceService) Create(context.Context, resource.CreateRequest) (*resource.Resource, error) {
	panic("not used")
}

func (f *fakeResourceService) GetByID(_ context.Context, id string) (*resource.Resource, error) {
	res, ok := f.resources[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return res, nil
}

func (f *fakeResourceService) List(context.Context, resource.Filter) ([]*resource.Resource, int, error) {
	var out []*resource.Resource
	for _, res := range f.resources {
		out = append(out, res)
	}
	return out, len(out), nil
}

func (f *fakeResourceService) Update(context.Context, string, resource.UpdateRequest) (*resource.Resource, error) {
	panic("not used")
}

func (f *fakeResourceService) SetPhoto(context.Context, string, *string) error {
	panic("not used")
}

func (f *fakeResourceService) Delete(context.Context, string) error {
	panic("not used")
}

type fakeSlotService struct {
	slots []*slot.Slot
}

func (f *fakeSlotService) Create(context.Context, slot.CreateRequest) (*slot.Slot, error) {
	panic("not used")
}

func (f *fakeSlotService) GetByID(context.Context, string) (*slot.Slot, error) {
	panic("not used")
}

func (f *fakeSlotService) List(context.Context, slot.Filter) ([]*slot.Slot, int, error) {
	panic("not used")
}

func (f *fakeSlotService) ListForResourceDate(_ context.Context, resourceID string, date schedule.DateStamp) ([]*slot.Slot, error) {
	var out []*slot.Slot
	for _, s := range f.slots {
		if s.ResourceID == resourceID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotService) ListForMonth(_ context.Context, year int, month time.Month) ([]*slot.Slot, error) {
	var out []*slot.Slot
	for _, s := range f.slots {
		if s.Date.Year == year && s.Date.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotService) Delete(context.Context, string) error {
	panic("not used")
}

func tod(t *testing.T, value string) schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(value)
	require.NoError(t, err)
	return v
}

func date(t *testing.T, value string) schedule.DateStamp {
	t.Helper()
	d, err := schedule.ParseDateStamp(value)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeResourceService, *fakeSlotService) {
	t.Helper()
	repo := newFakeRepo()
	resources := &fakeResourceService{resources: map[string]*resource.Resource{
		"room-a": {
			ID:       "room-a",
			Name:     "Conference Room A",
			Type:     "conference_room",
			Capacity: 10,
			Status:   resource.StatusAvailable,
		},
	}}
	slots := &fakeSlotService{}
	return NewService(repo, resources, slots, 12), repo, resources, slots
}

func createBooking(t *testing.T, svc Service, start, end string) (*Booking, []schedule.Interval) {
	t.Helper()
	b, conflicts, err := svc.Create(context.Background(), CreateRequest{
		ResourceID: "room-a",
		Date:       date(t, "2025-06-10"),
		Start:      tod(t, start),
		End:        tod(t, end),
		Title:      "team sync",
		CreatedBy:  "user-1",
	})
	require.NoError(t, err)
	return b, conflicts
}

func TestCreateReportsConflictsButStillPersists(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	first, conflicts := createBooking(t, svc, "09:00", "11:00")
	require.Empty(t, conflicts)
	require.Equal(t, schedule.StatusConfirmed, first.Status)
	require.Equal(t, "Conference Room A", first.ResourceName)

	second, conflicts := createBooking(t, svc, "10:00", "12:00")
	require.Len(t, conflicts, 1)
	require.Equal(t, first.Interval(), conflicts[0])

	// The overlapping booking is stored anyway.
	stored, err := repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	require.Equal(t, schedule.StatusConfirmed, stored.Status)
}

func TestCreateBackToBackIsNotAConflict(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	createBooking(t, svc, "09:00", "11:00")
	_, conflicts := createBooking(t, svc, "11:00", "13:00")
	require.Empty(t, conflicts)
}

func TestCreateIgnoresCancelledWhenDetectingConflicts(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	first, _ := createBooking(t, svc, "09:00", "11:00")

	cancelled := string(schedule.StatusCancelled)
	_, _, err := svc.Update(context.Background(), first.ID, UpdateRequest{Status: &cancelled}, "user-1", false)
	require.NoError(t, err)

	_, conflicts := createBooking(t, svc, "09:30", "10:30")
	require.Empty(t, conflicts)
}

func TestCreateValidation(t *testing.T) {
	svc, _, resources, _ := newTestService(t)
	ctx := context.Background()

	base := CreateRequest{
		ResourceID: "room-a",
		Date:       date(t, "2025-06-10"),
		Start:      tod(t, "09:00"),
		End:        tod(t, "11:00"),
		Title:      "review",
		CreatedBy:  "user-1",
	}

	t.Run("inverted range", func(t *testing.T) {
		req := base
		req.Start, req.End = req.End, req.Start
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("degenerate range", func(t *testing.T) {
		req := base
		req.End = req.Start
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("unknown resource", func(t *testing.T) {
		req := base
		req.ResourceID = "missing"
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("unknown priority", func(t *testing.T) {
		req := base
		req.Priority = "extreme"
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("policy bounds", func(t *testing.T) {
		resources.resources["room-a"].MinBookingHours = 1
		resources.resources["room-a"].MaxBookingHours = 4
		defer func() {
			resources.resources["room-a"].MinBookingHours = 0
			resources.resources["room-a"].MaxBookingHours = 0
		}()

		short := base
		short.End = tod(t, "09:30")
		_, _, err := svc.Create(ctx, short)
		require.ErrorIs(t, err, ErrBookingTooShort)

		long := base
		long.End = tod(t, "14:00")
		_, _, err = svc.Create(ctx, long)
		require.ErrorIs(t, err, ErrBookingTooLong)
	})

	t.Run("past start", func(t *testing.T) {
		req := base
		req.Now = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("advance notice", func(t *testing.T) {
		resources.resources["room-a"].AdvanceNoticeHours = 24
		defer func() { resources.resources["room-a"].AdvanceNoticeHours = 0 }()

		req := base
		req.Now = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
		_, _, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInsufficientNotice)
	})
}

func TestCreatePendingWhenApprovalRequired(t *testing.T) {
	svc, _, resources, _ := newTestService(t)
	resources.resources["room-a"].RequiresApproval = true

	b, _ := createBooking(t, svc, "09:00", "11:00")
	require.Equal(t, schedule.StatusPending, b.Status)
}

func TestUpdatePermissions(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	b, _ := createBooking(t, svc, "09:00", "11:00")

	confirmed := string(schedule.StatusConfirmed)
	_, _, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &confirmed}, "someone-else", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Owner may cancel but not confirm or complete.
	completed := string(schedule.StatusCompleted)
	_, _, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &completed}, "user-1", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	cancelled := string(schedule.StatusCancelled)
	updated, _, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled}, "user-1", false)
	require.NoError(t, err)
	require.Equal(t, schedule.StatusCancelled, updated.Status)

	// Admins may run any transition.
	updated, _, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &completed}, "admin", true)
	require.NoError(t, err)
	require.Equal(t, schedule.StatusCompleted, updated.Status)
}

func TestUpdateRecheckExcludesSelf(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	b, _ := createBooking(t, svc, "09:00", "11:00")

	// Shrinking the same booking must not report itself as a conflict.
	newEnd := tod(t, "10:00")
	_, conflicts, err := svc.Update(ctx, b.ID, UpdateRequest{End: &newEnd}, "user-1", false)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestDeletePermissions(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	b, _ := createBooking(t, svc, "09:00", "11:00")

	require.ErrorIs(t, svc.Delete(ctx, b.ID, "someone-else", false), ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, b.ID, "user-1", false))

	_, err := repo.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAvailabilitySubtractsBookings(t *testing.T) {
	svc, _, _, slots := newTestService(t)
	ctx := context.Background()
	day := date(t, "2025-06-10")

	slots.slots = []*slot.Slot{
		{ID: "s1", ResourceID: "room-a", Date: day, Start: tod(t, "08:00"), End: tod(t, "18:00")},
	}

	createBooking(t, svc, "09:00", "11:00")
	createBooking(t, svc, "13:00", "14:00")

	free, err := svc.Availability(ctx, "room-a", day)
	require.NoError(t, err)
	require.Len(t, free, 3)

	require.Equal(t, "08:00", free[0].Start.String())
	require.Equal(t, "09:00", free[0].End.String())
	require.Equal(t, "11:00", free[1].Start.String())
	require.Equal(t, "13:00", free[1].End.String())
	require.Equal(t, "14:00", free[2].Start.String())
	require.Equal(t, "18:00", free[2].End.String())
}

func TestAvailabilityIgnoresCancelled(t *testing.T) {
	svc, _, _, slots := newTestService(t)
	ctx := context.Background()
	day := date(t, "2025-06-10")

	slots.slots = []*slot.Slot{
		{ID: "s1", ResourceID: "room-a", Date: day, Start: tod(t, "09:00"), End: tod(t, "12:00")},
	}

	b, _ := createBooking(t, svc, "10:00", "11:00")
	cancelled := string(schedule.StatusCancelled)
	_, _, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled}, "user-1", false)
	require.NoError(t, err)

	free, err := svc.Availability(ctx, "room-a", day)
	require.NoError(t, err)
	require.Len(t, free, 1)
	require.Equal(t, "09:00", free[0].Start.String())
	require.Equal(t, "12:00", free[0].End.String())
}

func TestAvailabilityFullyBookedSlot(t *testing.T) {
	svc, _, _, slots := newTestService(t)
	day := date(t, "2025-06-10")

	slots.slots = []*slot.Slot{
		{ID: "s1", ResourceID: "room-a", Date: day, Start: tod(t, "09:00"), End: tod(t, "11:00")},
	}

	createBooking(t, svc, "09:00", "11:00")

	free, err := svc.Availability(context.Background(), "room-a", day)
	require.NoError(t, err)
	require.Empty(t, free)
}

func TestUtilization(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	day := date(t, "2025-06-10")

	createBooking(t, svc, "09:00", "12:00")

	b, _ := createBooking(t, svc, "13:00", "15:00")
	cancelled := string(schedule.StatusCancelled)
	_, _, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled}, "user-1", false)
	require.NoError(t, err)

	// 3 booked hours against the 12 hour default.
	pct, capacity, err := svc.Utilization(ctx, "room-a", day, 0)
	require.NoError(t, err)
	require.Equal(t, 25, pct)
	require.InDelta(t, 12.0, capacity, 0.001)

	// Explicit capacity override.
	pct, capacity, err = svc.Utilization(ctx, "room-a", day, 6)
	require.NoError(t, err)
	require.Equal(t, 50, pct)
	require.InDelta(t, 6.0, capacity, 0.001)

	_, _, err = svc.Utilization(ctx, "room-a", day, -1)
	require.ErrorIs(t, err, schedule.ErrInvalidCapacity)
}

func TestStats(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	createBooking(t, svc, "09:00", "12:00")
	b, _ := createBooking(t, svc, "13:00", "15:00")

	cancelled := string(schedule.StatusCancelled)
	_, _, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled}, "user-1", false)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, 2025, time.June)
	require.NoError(t, err)

	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Confirmed)
	require.Equal(t, 1, stats.Cancelled)
	require.InDelta(t, 3.0, stats.BookedHours, 0.001)

	require.Len(t, stats.Resources, 1)
	require.Equal(t, "room-a", stats.Resources[0].ResourceID)
	require.Equal(t, 1, stats.Resources[0].Bookings)
	// 3 hours over 12*30 hours of June capacity rounds to 1 percent.
	require.Equal(t, 1, stats.Resources[0].Utilization)
}

func TestCalendarGrid(t *testing.T) {
	svc, _, _, slots := newTestService(t)
	ctx := context.Background()
	day := date(t, "2025-06-10")

	slots.slots = []*slot.Slot{
		{ID: "s1", ResourceID: "room-a", Date: day, Start: tod(t, "09:00"), End: tod(t, "17:00")},
	}
	createBooking(t, svc, "09:00", "11:00")

	cells, err := svc.Calendar(ctx, 2025, time.June, day)
	require.NoError(t, err)
	require.Zero(t, len(cells)%7)

	var target *schedule.DayCell
	for i := range cells {
		if cells[i].Date == day {
			target = &cells[i]
		}
	}
	require.NotNil(t, target)
	require.True(t, target.InCurrentMonth)
	require.True(t, target.IsToday)
	require.Equal(t, 1, target.BookingCount)
	require.Equal(t, 1, target.SlotCount)
	require.True(t, target.Available)
}
