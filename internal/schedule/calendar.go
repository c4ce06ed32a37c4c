package schedule

import "time"

// DayCell is one cell of a month-view grid. Cells are derived fresh on every
// build and never persisted.
type DayCell struct {
	Date           DateStamp
	InCurrentMonth bool
	IsToday        bool
	BookingCount   int
	SlotCount      int
	Available      bool
}

// MonthGrid builds the flat month-view grid for (year, month): leading cells
// from the previous month to align day 1 to its Sunday-first weekday column,
// every day of the month, then trailing cells from the next month padding the
// last week. The result length is always a multiple of 7.
//
// In-month cells count non-cancelled bookings and declared slots on their
// date, across all resources; a cell is Available iff it has at least one
// slot. Adjacent-month cells are rendered but never bookable, so they stay
// zeroed and unavailable.
//
// "Today" is an explicit argument rather than a clock read, so two calls with
// the same inputs always produce the same grid.
func MonthGrid(year int, month time.Month, bookings []Entry, slots []Interval, today DateStamp) []DayCell {
	bookingsByDate := make(map[DateStamp]int)
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		bookingsByDate[b.Date]++
	}
	slotsByDate := make(map[DateStamp]int)
	for _, s := range slots {
		slotsByDate[s.Date]++
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	lead := int(first.Weekday()) // Sunday = 0, so a Sunday 1st needs no leading cells

	cells := make([]DayCell, 0, lead+daysInMonth+6)

	for i := lead; i > 0; i-- {
		cells = append(cells, DayCell{Date: DateOf(first.AddDate(0, 0, -i))})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := DateStamp{Year: year, Month: month, Day: day}
		slotCount := slotsByDate[date]
		cells = append(cells, DayCell{
			Date:           date,
			InCurrentMonth: true,
			IsToday:        date == today,
			BookingCount:   bookingsByDate[date],
			SlotCount:      slotCount,
			Available:      slotCount > 0,
		})
	}

	for next := 1; len(cells)%7 != 0; next++ {
		cells = append(cells, DayCell{Date: DateOf(first.AddDate(0, 1, next-1))})
	}

	return cells
}
