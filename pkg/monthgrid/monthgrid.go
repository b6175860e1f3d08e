// Package monthgrid computes month-view calendar grids: the ordered run of
// day cells for a (year, month), padded with leading and trailing days from
// the adjacent months so the total is always a whole number of weeks.
//
// Weeks start on Sunday and weekday indices follow time.Weekday (0 = Sunday).
// The package is pure; "today" is always passed in by the caller.
package monthgrid

import (
	"strconv"
	"time"
)

// Cell is one day slot of a computed grid.
type Cell struct {
	Year       int
	Month      time.Month
	Day        int
	OtherMonth bool
	Today      bool
}

// Date formats the cell's date as "YYYY-MM-DD".
func (c Cell) Date() string {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC).
		Format("2006-01-02")
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index (0 = Sunday) of day 1.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Prev returns the (year, month) immediately before the given one.
func Prev(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// Next returns the (year, month) immediately after the given one.
func Next(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// Label renders the "<MonthName> <Year>" display heading.
func Label(year int, month time.Month) string {
	return month.String() + " " + strconv.Itoa(year)
}

// Weekdays returns the column headers, Sunday first.
func Weekdays() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// Build computes the full cell sequence for a month: leading cells from the
// tail of the previous month, one body cell per day, and trailing cells from
// the head of the next month up to the smallest multiple of seven that fits.
// Only body cells are ever marked Today.
func Build(year int, month time.Month, today time.Time) []Cell {
	first := FirstWeekday(year, month)
	days := DaysIn(year, month)

	prevYear, prevMonth := Prev(year, month)
	nextYear, nextMonth := Next(year, month)
	daysInPrev := DaysIn(prevYear, prevMonth)

	total := ((first + days + 6) / 7) * 7
	cells := make([]Cell, 0, total)

	for i := first - 1; i >= 0; i-- {
		cells = append(cells, Cell{
			Year:       prevYear,
			Month:      prevMonth,
			Day:        daysInPrev - i,
			OtherMonth: true,
		})
	}

	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Year:  year,
			Month: month,
			Day:   day,
			Today: year == today.Year() &&
				month == today.Month() &&
				day == today.Day(),
		})
	}

	for day := 1; len(cells) < total; day++ {
		cells = append(cells, Cell{
			Year:       nextYear,
			Month:      nextMonth,
			Day:        day,
			OtherMonth: true,
		})
	}

	return cells
}
