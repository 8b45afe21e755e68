package availability

import (
	"fmt"
	"time"
)

// Norwegian (Bokmål) names, indexed by time.Weekday and time.Month-1
var (
	weekdayNames = [7]string{"søndag", "mandag", "tirsdag", "onsdag", "torsdag", "fredag", "lørdag"}
	monthNames   = [12]string{
		"januar", "februar", "mars", "april", "mai", "juni",
		"juli", "august", "september", "oktober", "november", "desember",
	}
)

// FormatDateLong formats a date as "onsdag 17. januar"
func FormatDateLong(date time.Time) string {
	return fmt.Sprintf("%s %d. %s", weekdayNames[date.Weekday()], date.Day(), monthNames[date.Month()-1])
}

// FormatDateShort formats a date as "17.01"
func FormatDateShort(date time.Time) string {
	return fmt.Sprintf("%02d.%02d", date.Day(), int(date.Month()))
}

// FormatHours renders a duration in whole hours: "1 time", "3 timer"
func FormatHours(hours int) string {
	if hours == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d timer", hours)
}

// AvailabilityLabel is the venue badge text: "5 timer ledig" or "Fullt"
func AvailabilityLabel(freeHours int) string {
	if freeHours == 0 {
		return "Fullt"
	}
	return fmt.Sprintf("%d timer ledig", freeHours)
}
