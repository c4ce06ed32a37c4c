package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtilization(t *testing.T) {
	date, err := ParseDateStamp("2024-09-24")
	require.NoError(t, err)

	tests := []struct {
		name     string
		bookings []Entry
		capacity float64
		want     int
	}{
		{
			name:     "no bookings",
			bookings: nil,
			capacity: 12,
			want:     0,
		},
		{
			name: "cancelled booking excluded",
			bookings: []Entry{
				{Interval: iv(t, "r1", "2024-09-24", "09:00", "12:00"), Status: StatusConfirmed},
				{Interval: iv(t, "r1", "2024-09-24", "14:00", "15:00"), Status: StatusCancelled},
			},
			capacity: 12,
			want:     25,
		},
		{
			name: "other resource and other date excluded",
			bookings: []Entry{
				{Interval: iv(t, "r1", "2024-09-24", "09:00", "12:00"), Status: StatusConfirmed},
				{Interval: iv(t, "r2", "2024-09-24", "09:00", "12:00"), Status: StatusConfirmed},
				{Interval: iv(t, "r1", "2024-09-25", "09:00", "12:00"), Status: StatusConfirmed},
			},
			capacity: 12,
			want:     25,
		},
		{
			name: "fractional hours round to nearest",
			bookings: []Entry{
				{Interval: iv(t, "r1", "2024-09-24", "09:00", "09:50"), Status: StatusConfirmed},
			},
			capacity: 12,
			want:     7, // 50min / 12h = 6.94%
		},
		{
			name: "over-allocation is not clamped",
			bookings: []Entry{
				{Interval: iv(t, "r1", "2024-09-24", "08:00", "18:00"), Status: StatusConfirmed},
				{Interval: iv(t, "r1", "2024-09-24", "08:00", "18:00"), Status: StatusPending},
			},
			capacity: 12,
			want:     167,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Utilization("r1", date, tt.bookings, tt.capacity)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUtilizationInvalidCapacity(t *testing.T) {
	date, err := ParseDateStamp("2024-09-24")
	require.NoError(t, err)

	for _, capacity := range []float64{0, -1} {
		_, err := Utilization("r1", date, nil, capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

// Adding a non-cancelled booking never lowers utilization; adding a cancelled
// one never changes it.
func TestUtilizationMonotonic(t *testing.T) {
	date, err := ParseDateStamp("2024-09-24")
	require.NoError(t, err)

	bookings := []Entry{
		{Interval: iv(t, "r1", "2024-09-24", "09:00", "10:00"), Status: StatusConfirmed},
	}

	base, err := Utilization("r1", date, bookings, DefaultDailyCapacityHours)
	require.NoError(t, err)

	grown := append(bookings[:len(bookings):len(bookings)],
		Entry{Interval: iv(t, "r1", "2024-09-24", "15:00", "16:30"), Status: StatusPending})
	after, err := Utilization("r1", date, grown, DefaultDailyCapacityHours)
	require.NoError(t, err)
	require.GreaterOrEqual(t, after, base)

	withCancelled := append(bookings[:len(bookings):len(bookings)],
		Entry{Interval: iv(t, "r1", "2024-09-24", "15:00", "16:30"), Status: StatusCancelled})
	same, err := Utilization("r1", date, withCancelled, DefaultDailyCapacityHours)
	require.NoError(t, err)
	require.Equal(t, base, same)
}
