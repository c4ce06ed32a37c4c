package schedule

import (
	"errors"
	"math"
)

// DefaultDailyCapacityHours is the assumed bookable window of a resource per
// day when the caller does not supply one.
const DefaultDailyCapacityHours = 12

var ErrInvalidCapacity = errors.New("daily capacity hours must be positive")

// Utilization computes booked hours for one resource on one date as a
// percentage of capacityHours, rounded to the nearest integer. Cancelled
// bookings do not count. The result is deliberately not clamped: a value over
// 100 tells the caller the resource is over-allocated.
func Utilization(resourceID string, date DateStamp, bookings []Entry, capacityHours float64) (int, error) {
	if capacityHours <= 0 {
		return 0, ErrInvalidCapacity
	}

	var bookedHours float64
	for _, b := range bookings {
		if b.ResourceID != resourceID || b.Date != date || b.Status == StatusCancelled {
			continue
		}
		bookedHours += b.DurationHours()
	}

	return int(math.Round(bookedHours / capacityHours * 100)), nil
}
