package appointment

import "time"

// View is the calendar granularity of the appointments screen.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

func (v View) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// InView reports whether an appointment starting at dateTime is visible for
// the given reference date and view. All comparisons use the reference
// date's location.
//
//   - day: same calendar date.
//   - week: within the Sunday-to-Saturday week of selected. Bounds are
//     normalized to whole days, so a late Saturday appointment is included
//     regardless of selected's time-of-day.
//   - month: same month and year.
func InView(dateTime, selected time.Time, view View) bool {
	loc := selected.Location()
	dt := dateTime.In(loc)

	switch view {
	case ViewDay:
		return sameDate(dt, selected)
	case ViewWeek:
		start, end := WeekBounds(selected)
		return !dt.Before(start) && dt.Before(end)
	case ViewMonth:
		return dt.Month() == selected.Month() && dt.Year() == selected.Year()
	}
	return false
}

// WeekBounds returns the half-open interval [Sunday 00:00, next Sunday 00:00)
// of selected's week in selected's location.
func WeekBounds(selected time.Time) (start, end time.Time) {
	loc := selected.Location()
	y, m, d := selected.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	start = dayStart.AddDate(0, 0, -int(selected.Weekday()))
	end = start.AddDate(0, 0, 7)
	return start, end
}

// Advance moves the reference date n view-units forward (negative n moves
// back): 1 day, 7 days, or 1 calendar month per unit.
func Advance(selected time.Time, view View, n int) time.Time {
	switch view {
	case ViewDay:
		return selected.AddDate(0, 0, n)
	case ViewWeek:
		return selected.AddDate(0, 0, 7*n)
	case ViewMonth:
		return selected.AddDate(0, n, 0)
	}
	return selected
}

// FilterByView narrows appointments to those visible for selected and view.
func FilterByView(appointments []*Appointment, selected time.Time, view View) []*Appointment {
	out := make([]*Appointment, 0, len(appointments))
	for _, a := range appointments {
		if InView(a.DateTime, selected, view) {
			out = append(out, a)
		}
	}
	return out
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
