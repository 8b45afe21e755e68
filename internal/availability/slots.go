package availability

import (
	"fmt"
	"time"
	"unicode/utf16"
	"unicode/utf8"
)

// Opening hours
const (
	WeekdayStartHour = 7
	WeekendStartHour = 8
	EndHour          = 22

	eveningFrom = 16
	eveningTo   = 19
)

// activities are assigned to booked slots by seed
var activities = [...]string{
	"Trening G14",
	"Trening J12",
	"Kamp Senior",
	"Trening G16",
	"Keepertrening",
	"Reservert",
	"Kamp G15",
	"Trening J16",
}

// SlotSource supplies the slots of one venue on one date
type SlotSource interface {
	Slots(venueID string, date time.Time) []TimeSlot
}

// MockSource synthesizes bookings from venue id, hour and day of month.
// It stands in until a real calendar feed exists.
type MockSource struct{}

// Slots implements SlotSource
func (MockSource) Slots(venueID string, date time.Time) []TimeSlot {
	return GenerateSlots(venueID, date)
}

// StartHour returns the first opening hour for the given date
func StartHour(date time.Time) int {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return WeekendStartHour
	default:
		return WeekdayStartHour
	}
}

// GenerateSlots returns the hourly slots of a venue for the given date.
// The result depends only on venueID, the weekday and the day of month.
func GenerateSlots(venueID string, date time.Time) []TimeSlot {
	startHour := StartHour(date)
	code, ok := firstCodeUnit(venueID)

	slots := make([]TimeSlot, 0, EndHour-startHour)
	for hour := startHour; hour < EndHour; hour++ {
		slot := TimeSlot{
			Start:     clock(hour),
			End:       clock(hour + 1),
			Available: true,
		}

		// An empty id has no seed and never books anything
		if ok {
			seed := code + hour + date.Day()
			if isBooked(seed, hour) {
				slot.Available = false
				slot.Activity = activities[seed%len(activities)]
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

func isBooked(seed, hour int) bool {
	if seed%3 == 0 {
		return true
	}
	return hour >= eveningFrom && hour <= eveningTo && seed%2 == 0
}

// firstCodeUnit returns the first UTF-16 code unit of s
func firstCodeUnit(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r < 0x10000 {
		return int(r), true
	}
	high, _ := utf16.EncodeRune(r)
	return int(high), true
}

// clock formats a whole hour as HH:mm
func clock(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
