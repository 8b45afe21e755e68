package app

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klabast/ledig-bane/internal/availability"
	"go.uber.org/zap"
)

// ServeIndex serves the availability page
func (a *App) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(a.indexHTML); err != nil {
		a.log.Error("Error writing index HTML", zap.Error(err))
	}
}

// Health reports that the server is up
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, map[string]string{"status": "ok"})
}

// GetConfig returns venues, the date window and this year's holidays
func (a *App) GetConfig(w http.ResponseWriter, r *http.Request) {
	win := a.window()

	a.writeJSON(w, ConfigResponse{
		Venues: a.venues.All(),
		Window: WindowInfo{
			Today:      win.First.Format(DateLayout),
			First:      win.First.Format(DateLayout),
			Last:       win.Last.Format(DateLayout),
			TodayLabel: availability.FormatDateLong(win.First),
			LastLabel:  availability.FormatDateLong(win.Last),
		},
		Timezone: a.loc.String(),
		Holidays: GetNorwegianHolidays(win.First.Year()),
		Mode:     a.Mode(),
	})
}

// ListVenues returns the venue table
// Query param: sort (optional, "name" for alphabetical order)
func (a *App) ListVenues(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("sort") == "name" {
		a.writeJSON(w, a.venues.ByName())
		return
	}
	a.writeJSON(w, a.venues.All())
}

// GetVenue returns a single venue
// URL: /api/venues/{id}
func (a *App) GetVenue(w http.ResponseWriter, r *http.Request) {
	venue, ok := a.venues.Get(chi.URLParam(r, "id"))
	if !ok {
		a.writeError(w, http.StatusNotFound, ErrVenueNotFound)
		return
	}
	a.writeJSON(w, venue)
}

// HandleDay returns every venue's availability for a date
// Query param: date (optional, defaults to today)
func (a *App) HandleDay(w http.ResponseWriter, r *http.Request) {
	date, err := a.parseDate(r)
	if err != nil {
		a.dateError(w, err)
		return
	}

	win := a.window()
	day := availability.BuildDay(a.venues.All(), a.slotSource(r.Context()), date, a.now())
	holiday, _ := HolidayName(date)

	a.writeJSON(w, DayResponse{
		Day:     day,
		Holiday: holiday,
		Prev:    win.Prev(date).Format(DateLayout),
		Next:    win.Next(date).Format(DateLayout),
	})
}

// HandleVenueDay returns one venue's slots and free periods for a date
// URL: /api/venues/{id}/day?date=2024-03-05
func (a *App) HandleVenueDay(w http.ResponseWriter, r *http.Request) {
	venue, ok := a.venues.Get(chi.URLParam(r, "id"))
	if !ok {
		a.writeError(w, http.StatusNotFound, ErrVenueNotFound)
		return
	}

	date, err := a.parseDate(r)
	if err != nil {
		a.dateError(w, err)
		return
	}

	holiday, _ := HolidayName(date)
	a.writeJSON(w, VenueDayResponse{
		Date:           date.Format(DateLayout),
		DateLabel:      availability.FormatDateLong(date),
		DateShortLabel: availability.FormatDateShort(date),
		Holiday:        holiday,
		VenueDay:       availability.BuildVenueDay(venue, a.slotSource(r.Context()), date, a.now()),
	})
}

// HandleDownload exports a venue's free periods as ICS, CSV or JSON
// Query params: venue, date, format, reminder (minutes before start, ICS only)
func (a *App) HandleDownload(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	venue, ok := a.venues.Get(query.Get("venue"))
	if !ok {
		a.writeError(w, http.StatusNotFound, ErrVenueNotFound)
		return
	}

	date, err := a.parseDate(r)
	if err != nil {
		a.dateError(w, err)
		return
	}

	reminder := 0
	if raw := query.Get("reminder"); raw != "" {
		reminder, err = strconv.Atoi(raw)
		if err != nil || reminder < 0 {
			a.writeError(w, http.StatusBadRequest, ErrInvalidReminder)
			return
		}
	}

	periods := availability.AvailablePeriods(a.slotSource(r.Context()).Slots(venue.ID, date))

	switch query.Get("format") {
	case "ics":
		a.GenerateICS(w, venue, date, periods, reminder)
	case "csv":
		a.GenerateCSV(w, venue, date, periods)
	case "json":
		a.GenerateJSON(w, venue, date, periods)
	default:
		a.writeError(w, http.StatusBadRequest, ErrInvalidFormat)
	}
}

// HandleSubscribe serves an ICS feed with free periods for every day in the window
// URL: /api/subscribe/{id}
func (a *App) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	venue, ok := a.venues.Get(chi.URLParam(r, "id"))
	if !ok {
		a.writeError(w, http.StatusNotFound, ErrVenueNotFound)
		return
	}

	source := a.slotSource(r.Context())
	var days []DayPeriods
	for _, date := range a.window().Days() {
		days = append(days, DayPeriods{
			Date:    date,
			Periods: availability.AvailablePeriods(source.Slots(venue.ID, date)),
		})
	}

	a.GenerateSubscriptionICS(w, venue, days)
}

// HandleCacheFlush empties the slot cache (admin only)
func (a *App) HandleCacheFlush(w http.ResponseWriter, r *http.Request) {
	n, err := a.cache.Flush(r.Context())
	if err != nil {
		a.log.Error("Error flushing slot cache", zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, ErrInternalServer)
		return
	}

	a.log.Info("Slot cache flushed", zap.Int("keys", n))
	a.writeJSON(w, map[string]interface{}{"status": "ok", "deleted": n})
}
