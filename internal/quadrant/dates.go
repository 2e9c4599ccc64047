// Package quadrant holds the planner's view-model: period windows, the
// absence index, the employee/day grid, and the mutation controller that keeps
// them consistent with the authoritative record store.
package quadrant

import "time"

// ISODate is the wire format for calendar days.
const ISODate = "2006-01-02"

// Period names a preset display window. The set is closed; adding a window is
// a data change in resolvePeriod, not new logic.
type Period string

const (
	PeriodChristmas Period = "christmas"
	PeriodSummer    Period = "summer"
	PeriodFullYear  Period = "year"
)

// DateWindow is an inclusive start/end day pair, start <= end, never empty.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod maps a period key to its concrete window, anchored to
// baseYear. Unrecognized keys fall back to the full-year window.
func ResolvePeriod(key string, baseYear int) DateWindow {
	switch Period(key) {
	case PeriodChristmas:
		return DateWindow{
			Start: time.Date(baseYear, time.December, 22, 0, 0, 0, 0, time.UTC),
			End:   time.Date(baseYear+1, time.January, 7, 0, 0, 0, 0, time.UTC),
		}
	case PeriodSummer:
		return DateWindow{
			Start: time.Date(baseYear, time.June, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(baseYear, time.September, 15, 0, 0, 0, 0, time.UTC),
		}
	default:
		return DateWindow{
			Start: time.Date(baseYear, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(baseYear, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}
}

// Days expands the window into its ordered daily sequence, one calendar day at
// a time, both ends inclusive.
func (w DateWindow) Days() []time.Time {
	var days []time.Time
	for day := DayOf(w.Start); !day.After(w.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// Contains reports whether the day falls inside the window.
func (w DateWindow) Contains(day time.Time) bool {
	day = DayOf(day)
	return !day.Before(DayOf(w.Start)) && !day.After(DayOf(w.End))
}

// DayOf truncates a timestamp to its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend classifies a day as Saturday or Sunday. Purely a function of the
// weekday; absence data never feeds into it.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
