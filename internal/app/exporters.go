package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"go.uber.org/zap"
)

// DayPeriods groups the free periods of one date
type DayPeriods struct {
	Date    time.Time
	Periods []availability.AvailablePeriod
}

// writeString writes to w and logs any error (helper for ICS generation)
func (a *App) writeString(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		a.log.Error("Error writing to response", zap.Error(err))
	}
}

// Event times are written in UTC so feeds need no VTIMEZONE block
const icsUTCLayout = "20060102T150405Z"

// icsEscape escapes TEXT values per RFC 5545
var icsEscape = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// periodTime combines a date with an HH:mm clock in the venues' zone
func (a *App) periodTime(date time.Time, hhmm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date.Format(DateLayout)+" "+hhmm, a.loc)
}

// writeEvent writes one VEVENT for a free period; reminder is minutes before start, 0 for none
func (a *App) writeEvent(w io.Writer, venue availability.Venue, date time.Time, p availability.AvailablePeriod, reminder int) {
	start, startErr := a.periodTime(date, p.Start)
	end, endErr := a.periodTime(date, p.End)
	if err := errors.Join(startErr, endErr); err != nil {
		a.log.Error("Skipping period with malformed time",
			zap.String("venue", venue.ID),
			zap.String("date", date.Format(DateLayout)),
			zap.String("start", p.Start),
			zap.String("end", p.End),
			zap.Error(err))
		return
	}

	// Stable UID so calendar apps update instead of duplicating
	uid := fmt.Sprintf("%s-%s-%s@%s", venue.ID, date.Format(DateLayout), strings.ReplaceAll(p.Start, ":", ""), ICSUIDDomain)
	summary := "Ledig bane: " + venue.Name

	a.writeString(w, "BEGIN:VEVENT\n")
	a.writeString(w, "UID:%s\n", uid)
	a.writeString(w, "DTSTAMP:%s\n", a.now().UTC().Format(icsUTCLayout))
	a.writeString(w, "DTSTART:%s\n", start.UTC().Format(icsUTCLayout))
	a.writeString(w, "DTEND:%s\n", end.UTC().Format(icsUTCLayout))
	a.writeString(w, "SUMMARY:%s\n", icsEscape.Replace(summary))
	a.writeString(w, "DESCRIPTION:%s\n", icsEscape.Replace(fmt.Sprintf("%s ledig %s–%s (%s)", venue.Name, p.Start, p.End, availability.FormatHours(p.Duration))))
	a.writeString(w, "LOCATION:%s\n", icsEscape.Replace(venue.Address))
	if venue.BookingURL != "" {
		a.writeString(w, "URL:%s\n", venue.BookingURL)
	}
	if reminder > 0 {
		a.AddAlarm(w, reminder, summary)
	}
	a.writeString(w, "END:VEVENT\n")
}

// writeCalendarHeader writes the VCALENDAR preamble
func (a *App) writeCalendarHeader(w io.Writer, name string, publish bool) {
	a.writeString(w, "BEGIN:VCALENDAR\n")
	a.writeString(w, "VERSION:2.0\n")
	a.writeString(w, "PRODID:%s\n", ICSProductID)
	if publish {
		a.writeString(w, "METHOD:PUBLISH\n") // Required for subscriptions
	}
	a.writeString(w, "X-WR-CALNAME:%s\n", icsEscape.Replace(name))
	a.writeString(w, "X-WR-TIMEZONE:%s\n", a.loc.String())
	a.writeString(w, "CALSCALE:GREGORIAN\n")
}

// GenerateICS generates an iCalendar file with one event per free period
func (a *App) GenerateICS(w http.ResponseWriter, venue availability.Venue, date time.Time, periods []availability.AvailablePeriod, reminder int) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ledig-bane_%s_%s.ics", venue.ID, date.Format(DateLayout)))

	a.writeCalendarHeader(w, fmt.Sprintf("Ledig bane %s %s", venue.ShortName, availability.FormatDateShort(date)), false)
	for _, p := range periods {
		a.writeEvent(w, venue, date, p, reminder)
	}
	a.writeString(w, "END:VCALENDAR\n")
}

// AddAlarm adds a display reminder minutesBefore the event start
func (a *App) AddAlarm(w io.Writer, minutesBefore int, description string) {
	days := minutesBefore / (24 * 60)
	remaining := minutesBefore % (24 * 60)
	hours := remaining / 60
	minutes := remaining % 60

	a.writeString(w, "BEGIN:VALARM\n")
	a.writeString(w, "ACTION:DISPLAY\n")
	a.writeString(w, "DESCRIPTION:%s\n", icsEscape.Replace("Påminnelse: "+description))
	a.writeString(w, "TRIGGER:-P%dDT%dH%dM\n", days, hours, minutes)
	a.writeString(w, "END:VALARM\n")
}

// GenerateCSV generates a CSV file with the free periods
func (a *App) GenerateCSV(w http.ResponseWriter, venue availability.Venue, date time.Time, periods []availability.AvailablePeriod) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ledig-bane_%s_%s.csv", venue.ID, date.Format(DateLayout)))

	cw := csv.NewWriter(w)
	records := [][]string{{"Dato", "Bane", "Fra", "Til", "Timer"}}
	for _, p := range periods {
		records = append(records, []string{date.Format(DateLayout), venue.Name, p.Start, p.End, strconv.Itoa(p.Duration)})
	}
	if err := cw.WriteAll(records); err != nil {
		a.log.Error("Error writing CSV export", zap.Error(err))
	}
}

// GenerateJSON generates a JSON file with the free periods
func (a *App) GenerateJSON(w http.ResponseWriter, venue availability.Venue, date time.Time, periods []availability.AvailablePeriod) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ledig-bane_%s_%s.json", venue.ID, date.Format(DateLayout)))

	export := make([]ExportPeriod, 0, len(periods))
	for _, p := range periods {
		export = append(export, ExportPeriod{Date: date.Format(DateLayout), AvailablePeriod: p})
	}

	a.writeJSON(w, map[string]interface{}{
		"venue":   venue.ID,
		"name":    venue.Name,
		"date":    date.Format(DateLayout),
		"periods": export,
	})
}

// GenerateSubscriptionICS generates an iCalendar subscription feed
// Unlike GenerateICS, this is designed for calendar subscriptions:
// - No Content-Disposition attachment header (inline content)
// - No VALARM blocks (most calendar apps ignore them in subscriptions)
// - Includes METHOD:PUBLISH and refresh interval headers
func (a *App) GenerateSubscriptionICS(w http.ResponseWriter, venue availability.Venue, days []DayPeriods) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	a.writeCalendarHeader(w, "Ledig bane "+venue.ShortName, true)
	a.writeString(w, "X-PUBLISHED-TTL:PT1H\n") // Suggest refresh every hour

	for _, day := range days {
		for _, p := range day.Periods {
			a.writeEvent(w, venue, day.Date, p, 0)
		}
	}

	a.writeString(w, "END:VCALENDAR\n")
}
