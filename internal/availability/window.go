package availability

import "time"

// DefaultDaysAhead is how far ahead visitors may look
const DefaultDaysAhead = 7

// Window is the range of selectable dates, both ends inclusive
type Window struct {
	First time.Time
	Last  time.Time
}

// NewWindow returns the window starting on the calendar day of now
func NewWindow(now time.Time, daysAhead int) Window {
	first := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{
		First: first,
		Last:  first.AddDate(0, 0, daysAhead),
	}
}

// Contains reports whether date falls within the window
func (w Window) Contains(date time.Time) bool {
	d := midnight(date)
	return !d.Before(midnight(w.First)) && !d.After(midnight(w.Last))
}

// Prev returns the day before date, or date itself when that would leave the window
func (w Window) Prev(date time.Time) time.Time {
	prev := date.AddDate(0, 0, -1)
	if midnight(prev).Before(midnight(w.First)) {
		return date
	}
	return prev
}

// Next returns the day after date, or date itself when that would leave the window
func (w Window) Next(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	if midnight(next).After(midnight(w.Last)) {
		return date
	}
	return next
}

// Days lists every date in the window
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.First; !midnight(d).After(midnight(w.Last)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
