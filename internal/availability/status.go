package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status classifies a slot starting at startTime (HH:mm) on slotDate relative to now.
// Calendar days are compared in their own locations; callers pass both in the venue's zone.
func Status(startTime string, slotDate, now time.Time) TimeStatus {
	slotDay := midnight(slotDate)
	today := midnight(now)

	if slotDay.After(today) {
		return StatusFuture
	}
	if slotDay.Before(today) {
		return StatusPast
	}

	hour := mustParseHour(startTime)
	current := now.Hour()

	switch {
	case hour < current:
		return StatusPast
	case hour == current:
		return StatusNow
	case hour == current+1:
		return StatusSoon
	default:
		return StatusFuture
	}
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return midnight(a).Equal(midnight(b))
}

// midnight drops the clock and zone, keeping the calendar day
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mustParseHour extracts the hour from HH:mm. Slot times are produced by
// GenerateSlots, so anything else is a bug in the caller.
func mustParseHour(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		panic(fmt.Sprintf("availability: malformed slot time %q", hhmm))
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		panic(fmt.Sprintf("availability: malformed slot time %q", hhmm))
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		panic(fmt.Sprintf("availability: malformed slot time %q", hhmm))
	}
	return hour
}
