package booking

import (
	"context"
	"errors"
	"sort"

	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

// Availability subtracts the resource's non-cancelled bookings from its
// declared slots for the date and returns the remaining free windows,
// ordered by start time.
func (s *service) Availability(ctx context.Context, resourceID string, date schedule.DateStamp) ([]schedule.Interval, error) {
	if _, err := s.resService.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	slots, err := s.slotService.ListForResourceDate(ctx, resourceID, date)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListForResourceDate(ctx, resourceID, date)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == schedule.StatusCancelled {
			continue
		}
		busy = append(busy, b.Interval())
	}

	free := make([]schedule.Interval, 0, len(slots))
	for _, sl := range slots {
		free = append(free, subtractBusy(sl.Interval(), busy)...)
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start.Minutes() < free[j].Start.Minutes()
	})

	return free, nil
}

// subtractBusy carves the busy windows out of one slot window. Both sides
// are half-open, so a booking ending exactly where the slot starts removes
// nothing.
func subtractBusy(window schedule.Interval, busy []schedule.Interval) []schedule.Interval {
	overlapping := make([]schedule.Interval, 0, len(busy))
	for _, b := range busy {
		if window.Overlaps(b) {
			overlapping = append(overlapping, b)
		}
	}
	sort.Slice(overlapping, func(i, j int) bool {
		return overlapping[i].Start.Minutes() < overlapping[j].Start.Minutes()
	})

	var free []schedule.Interval
	cursor := window.Start

	for _, b := range overlapping {
		if cursor.Before(b.Start) {
			free = append(free, schedule.Interval{
				ResourceID: window.ResourceID,
				Date:       window.Date,
				Start:      cursor,
				End:        b.Start,
			})
		}
		if cursor.Before(b.End) {
			cursor = b.End
		}
	}

	if cursor.Before(window.End) {
		free = append(free, schedule.Interval{
			ResourceID: window.ResourceID,
			Date:       window.Date,
			Start:      cursor,
			End:        window.End,
		})
	}

	return free
}
