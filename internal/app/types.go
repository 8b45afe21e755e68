package app

import "github.com/klabast/ledig-bane/internal/availability"

// WindowInfo describes the selectable date range
type WindowInfo struct {
	Today      string `json:"today"`
	First      string `json:"first"`
	Last       string `json:"last"`
	TodayLabel string `json:"todayLabel"`
	LastLabel  string `json:"lastLabel"`
}

// ConfigResponse is returned by /api/config
type ConfigResponse struct {
	Venues   []availability.Venue `json:"venues"`
	Window   WindowInfo           `json:"window"`
	Timezone string               `json:"timezone"`
	Holidays map[string]string    `json:"holidays"`
	Mode     string               `json:"mode"`
}

// DayResponse is the overview of all venues on one date
type DayResponse struct {
	availability.Day
	Holiday string `json:"holiday,omitempty"`
	Prev    string `json:"prev"`
	Next    string `json:"next"`
}

// VenueDayResponse is one venue on one date. Label comes from the embedded
// VenueDay (availability badge), so the date labels use their own names.
type VenueDayResponse struct {
	Date           string `json:"date"`
	DateLabel      string `json:"dateLabel"`
	DateShortLabel string `json:"dateShortLabel"`
	Holiday        string `json:"holiday,omitempty"`
	availability.VenueDay
}

// ExportPeriod is one free period in a download
type ExportPeriod struct {
	Date string `json:"date"`
	availability.AvailablePeriod
}
