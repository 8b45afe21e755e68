package app

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerateSubscriptionICS(t *testing.T) {
	a := newTestApp(t, Options{})
	venue, date, periods := molleparkenDay(t)

	days := []DayPeriods{
		{Date: date, Periods: periods},
		{Date: date.AddDate(0, 0, 1), Periods: []availability.AvailablePeriod{{Start: "08:00", End: "10:00", Duration: 2}}},
	}

	w := httptest.NewRecorder()
	a.GenerateSubscriptionICS(w, venue, days)

	resp := w.Result()
	body := w.Body.String()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Ledig Bane//Ledige tider//NO",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Ledig bane Mølleparken",
		"X-PUBLISHED-TTL:PT1H",
		"UID:molleparken-2024-03-06-0800@ledigbane.no",
		"DTSTART:20240306T070000Z",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("Subscription ICS missing required field: %s", field)
		}
	}

	if got := strings.Count(body, "BEGIN:VEVENT"); got != 6 {
		t.Errorf("Expected 6 events, got %d", got)
	}

	if strings.Contains(body, "BEGIN:VALARM") {
		t.Error("Subscription feed should not contain VALARM blocks")
	}

	if resp.Header.Get("Content-Disposition") != "" {
		t.Error("Subscription feed should be served inline")
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/calendar") {
		t.Errorf("Expected Content-Type text/calendar, got %s", ct)
	}
}

func TestGenerateSubscriptionICS_EmptyDays(t *testing.T) {
	a := newTestApp(t, Options{})
	venue, date, _ := molleparkenDay(t)

	w := httptest.NewRecorder()
	a.GenerateSubscriptionICS(w, venue, []DayPeriods{{Date: date}})

	body := w.Body.String()
	if strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("Fully booked days should produce no events")
	}
	if !strings.HasPrefix(body, "BEGIN:VCALENDAR\n") || !strings.HasSuffix(body, "END:VCALENDAR\n") {
		t.Error("Empty feed should still be a valid calendar")
	}
}

func TestGenerateSubscriptionICS_UniqueUIDs(t *testing.T) {
	a := newTestApp(t, Options{})
	venue, date, periods := molleparkenDay(t)

	w := httptest.NewRecorder()
	a.GenerateSubscriptionICS(w, venue, []DayPeriods{{Date: date, Periods: periods}})

	seen := make(map[string]bool)
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if !strings.HasPrefix(line, "UID:") {
			continue
		}
		if seen[line] {
			t.Errorf("Duplicate %s", line)
		}
		seen[line] = true
	}
	if len(seen) != len(periods) {
		t.Errorf("Expected %d UIDs, got %d", len(periods), len(seen))
	}
}

func TestGenerateSubscriptionICS_InvalidPeriod(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	a := newTestApp(t, Options{Logger: zap.New(core)})
	venue, date, _ := molleparkenDay(t)

	days := []DayPeriods{{
		Date: date,
		Periods: []availability.AvailablePeriod{
			{Start: "bad", End: "09:00", Duration: 1},
			{Start: "20:00", End: "21:00", Duration: 1},
		},
	}}

	w := httptest.NewRecorder()
	a.GenerateSubscriptionICS(w, venue, days)

	// The malformed period is skipped, the valid one is kept
	if got := strings.Count(w.Body.String(), "BEGIN:VEVENT"); got != 1 {
		t.Errorf("Expected 1 event, got %d", got)
	}

	entries := logs.FilterMessage("Skipping period with malformed time").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 error log for the skipped period, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["start"]; got != "bad" {
		t.Errorf("Logged start = %v, want bad", got)
	}
}

func TestGenerateSubscriptionICS_AcrossDST(t *testing.T) {
	a := newTestApp(t, Options{})
	venue, _, _ := molleparkenDay(t)

	// Summer time starts 2024-03-31 in Oslo, so 08:00 local is 06:00 UTC
	date := time.Date(2024, 3, 31, 0, 0, 0, 0, oslo(t))
	days := []DayPeriods{{Date: date, Periods: []availability.AvailablePeriod{{Start: "08:00", End: "09:00", Duration: 1}}}}

	w := httptest.NewRecorder()
	a.GenerateSubscriptionICS(w, venue, days)

	if !strings.Contains(w.Body.String(), "DTSTART:20240331T060000Z") {
		t.Error("Start should be converted with the summer time offset")
	}
}
