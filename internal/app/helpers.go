package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/klabast/ledig-bane/internal/availability"
	"go.uber.org/zap"
)

var (
	errInvalidDate   = errors.New(ErrInvalidDateFormat)
	errOutsideWindow = errors.New(ErrOutsideWindow)
)

// writeJSON encodes v with status 200 and logs encoding failures
func (a *App) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("Error encoding response", zap.Error(err))
	}
}

// writeError sends {"error": msg} with the given status
func (a *App) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		a.log.Error("Error encoding error response", zap.Error(err))
	}
}

// now returns the current moment in the venues' zone
func (a *App) now() time.Time {
	return a.clock().In(a.loc)
}

// window returns today's selectable range
func (a *App) window() availability.Window {
	return availability.NewWindow(a.now(), a.daysAhead)
}

// parseDate reads ?date=YYYY-MM-DD, defaulting to today, and checks it against the window
func (a *App) parseDate(r *http.Request) (time.Time, error) {
	w := a.window()

	raw := r.URL.Query().Get("date")
	if raw == "" {
		return w.First, nil
	}

	date, err := time.ParseInLocation(DateLayout, raw, a.loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	if !w.Contains(date) {
		return time.Time{}, errOutsideWindow
	}
	return date, nil
}

// dateError maps parseDate failures to a 400 response
func (a *App) dateError(w http.ResponseWriter, err error) {
	if errors.Is(err, errOutsideWindow) {
		a.writeError(w, http.StatusBadRequest, ErrOutsideWindow)
		return
	}
	a.writeError(w, http.StatusBadRequest, ErrInvalidDateFormat)
}
