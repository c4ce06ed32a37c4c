package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthGridLengthIsWholeWeeks(t *testing.T) {
	today := DateStamp{Year: 2025, Month: time.January, Day: 15}
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := MonthGrid(year, month, nil, nil, today)
			require.Zerof(t, len(cells)%7, "%d-%02d grid has %d cells", year, month, len(cells))
		}
	}
}

func TestMonthGridCoversEveryDay(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29}, // leap year
		{2025, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	today := DateStamp{Year: 2025, Month: time.June, Day: 1}
	for _, tt := range tests {
		cells := MonthGrid(tt.year, tt.month, nil, nil, today)

		inMonth := 0
		for _, c := range cells {
			if c.InCurrentMonth {
				inMonth++
			}
		}
		require.Equalf(t, tt.days, inMonth, "%d-%02d", tt.year, tt.month)
	}
}

// February 2025 starts on a Saturday: six leading January cells, 28 February
// cells, and one trailing March cell to complete the fifth week.
func TestMonthGridFebruary2025Alignment(t *testing.T) {
	today := DateStamp{Year: 2025, Month: time.February, Day: 10}
	cells := MonthGrid(2025, time.February, nil, nil, today)

	require.Len(t, cells, 35)

	for i := 0; i < 6; i++ {
		require.False(t, cells[i].InCurrentMonth)
		require.Equal(t, time.January, cells[i].Date.Month)
	}
	require.Equal(t, DateStamp{Year: 2025, Month: time.January, Day: 26}, cells[0].Date)

	require.Equal(t, DateStamp{Year: 2025, Month: time.February, Day: 1}, cells[6].Date)
	require.Equal(t, DateStamp{Year: 2025, Month: time.February, Day: 28}, cells[33].Date)

	last := cells[34]
	require.False(t, last.InCurrentMonth)
	require.Equal(t, DateStamp{Year: 2025, Month: time.March, Day: 1}, last.Date)
}

// June 2025 starts on a Sunday, so the grid has no leading cells at all.
func TestMonthGridSundayFirstNeedsNoLeading(t *testing.T) {
	today := DateStamp{Year: 2025, Month: time.June, Day: 1}
	cells := MonthGrid(2025, time.June, nil, nil, today)

	require.Equal(t, DateStamp{Year: 2025, Month: time.June, Day: 1}, cells[0].Date)
	require.True(t, cells[0].InCurrentMonth)
	require.True(t, cells[0].IsToday)
}

func TestMonthGridCountsAndAvailability(t *testing.T) {
	bookings := []Entry{
		{Interval: iv(t, "r1", "2025-02-10", "09:00", "10:00"), Status: StatusConfirmed},
		{Interval: iv(t, "r2", "2025-02-10", "14:00", "15:00"), Status: StatusPending},
		{Interval: iv(t, "r1", "2025-02-10", "11:00", "12:00"), Status: StatusCancelled},
		{Interval: iv(t, "r1", "2025-02-11", "09:00", "10:00"), Status: StatusCompleted},
	}
	slots := []Interval{
		iv(t, "r1", "2025-02-10", "08:00", "18:00"),
	}

	today := DateStamp{Year: 2025, Month: time.February, Day: 10}
	cells := MonthGrid(2025, time.February, bookings, slots, today)

	byDate := make(map[DateStamp]DayCell)
	for _, c := range cells {
		byDate[c.Date] = c
	}

	feb10 := byDate[DateStamp{Year: 2025, Month: time.February, Day: 10}]
	require.Equal(t, 2, feb10.BookingCount, "cancelled booking must not count")
	require.Equal(t, 1, feb10.SlotCount)
	require.True(t, feb10.Available)
	require.True(t, feb10.IsToday)

	feb11 := byDate[DateStamp{Year: 2025, Month: time.February, Day: 11}]
	require.Equal(t, 1, feb11.BookingCount)
	require.False(t, feb11.Available)
	require.False(t, feb11.IsToday)

	// Adjacent-month cells stay inert even when the data has entries there.
	jan26 := byDate[DateStamp{Year: 2025, Month: time.January, Day: 26}]
	require.Zero(t, jan26.BookingCount)
	require.False(t, jan26.Available)
}

func TestMonthGridDeterministic(t *testing.T) {
	bookings := []Entry{
		{Interval: iv(t, "r1", "2025-02-10", "09:00", "10:00"), Status: StatusConfirmed},
	}
	slots := []Interval{
		iv(t, "r1", "2025-02-10", "08:00", "18:00"),
	}
	today := DateStamp{Year: 2025, Month: time.February, Day: 10}

	first := MonthGrid(2025, time.February, bookings, slots, today)
	second := MonthGrid(2025, time.February, bookings, slots, today)
	require.Equal(t, first, second)
}
