package booking

import (
	"context"
	"math"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

// Stats summarizes one month of booking activity across all resources.
type Stats struct {
	Year  int
	Month time.Month

	Total     int
	Pending   int
	Confirmed int
	Cancelled int
	Completed int

	// BookedHours counts non-cancelled booking hours in the month.
	BookedHours float64

	Resources []ResourceStats
}

// ResourceStats reports one resource's share of the month.
type ResourceStats struct {
	ResourceID   string
	ResourceName string
	Bookings     int
	BookedHours  float64
	// Utilization is booked hours over the month's total capacity
	// (daily capacity times days in month), rounded to a percentage.
	Utilization int
}

func (s *service) Stats(ctx context.Context, year int, month time.Month) (*Stats, error) {
	bookings, err := s.repo.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Year: year, Month: month}

	byResource := map[string]*ResourceStats{}
	var order []string

	for _, b := range bookings {
		stats.Total++
		switch b.Status {
		case schedule.StatusPending:
			stats.Pending++
		case schedule.StatusConfirmed:
			stats.Confirmed++
		case schedule.StatusCancelled:
			stats.Cancelled++
		case schedule.StatusCompleted:
			stats.Completed++
		}

		if b.Status == schedule.StatusCancelled {
			continue
		}

		hours := b.Interval().DurationHours()
		stats.BookedHours += hours

		rs, ok := byResource[b.ResourceID]
		if !ok {
			rs = &ResourceStats{ResourceID: b.ResourceID, ResourceName: b.ResourceName}
			byResource[b.ResourceID] = rs
			order = append(order, b.ResourceID)
		}
		rs.Bookings++
		rs.BookedHours += hours
	}

	daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	monthCapacity := s.capacityHours * float64(daysInMonth)

	for _, id := range order {
		rs := byResource[id]
		rs.Utilization = int(math.Round(rs.BookedHours / monthCapacity * 100))
		stats.Resources = append(stats.Resources, *rs)
	}

	// Resources that had no bookings still appear, at zero, so the report
	// covers the whole fleet.
	resources, _, err := s.resService.List(ctx, resource.Filter{Page: 1, PageSize: 1000})
	if err != nil {
		return nil, err
	}
	for _, res := range resources {
		if _, ok := byResource[res.ID]; ok {
			continue
		}
		stats.Resources = append(stats.Resources, ResourceStats{
			ResourceID:   res.ID,
			ResourceName: res.Name,
		})
	}

	return stats, nil
}
