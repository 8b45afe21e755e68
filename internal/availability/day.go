package availability

import "time"

// PeriodView is a free period annotated for display
type PeriodView struct {
	AvailablePeriod
	Status TimeStatus `json:"status"`
	Label  string     `json:"label"`
}

// VenueDay is one venue's availability on one date
type VenueDay struct {
	Venue          Venue        `json:"venue"`
	Slots          []TimeSlot   `json:"slots"`
	Periods        []PeriodView `json:"periods"`
	TotalAvailable int          `json:"totalAvailable"`
	Label          string       `json:"label"`
	HasNow         bool         `json:"hasNow"`
}

// Summary aggregates a day across all venues
type Summary struct {
	TotalAvailable         int    `json:"totalAvailable"`
	VenuesWithAvailability int    `json:"venuesWithAvailability"`
	VenueCount             int    `json:"venueCount"`
	IsToday                bool   `json:"isToday"`
	AnyAvailableNow        bool   `json:"anyAvailableNow"`
	BestVenue              string `json:"bestVenue,omitempty"`
}

// Day is the overview of every venue on one date
type Day struct {
	Date       string     `json:"date"`
	Label      string     `json:"label"`
	ShortLabel string     `json:"shortLabel"`
	Venues     []VenueDay `json:"venues"`
	Summary    Summary    `json:"summary"`
}

// BuildVenueDay computes slots, periods and status for a single venue
func BuildVenueDay(venue Venue, source SlotSource, date, now time.Time) VenueDay {
	slots := source.Slots(venue.ID, date)
	periods := AvailablePeriods(slots)

	views := make([]PeriodView, 0, len(periods))
	for _, p := range periods {
		views = append(views, PeriodView{
			AvailablePeriod: p,
			Status:          Status(p.Start, date, now),
			Label:           FormatHours(p.Duration),
		})
	}

	hasNow := false
	for _, slot := range slots {
		if slot.Available && Status(slot.Start, date, now) == StatusNow {
			hasNow = true
			break
		}
	}

	total := TotalAvailableHours(slots)
	return VenueDay{
		Venue:          venue,
		Slots:          slots,
		Periods:        views,
		TotalAvailable: total,
		Label:          AvailabilityLabel(total),
		HasNow:         hasNow,
	}
}

// BuildDay computes the overview of all venues for date
func BuildDay(venues []Venue, source SlotSource, date, now time.Time) Day {
	day := Day{
		Date:       date.Format("2006-01-02"),
		Label:      FormatDateLong(date),
		ShortLabel: FormatDateShort(date),
		Venues:     make([]VenueDay, 0, len(venues)),
	}

	isToday := SameDay(date, now)
	summary := Summary{VenueCount: len(venues), IsToday: isToday}
	best := -1

	for i, venue := range venues {
		vd := BuildVenueDay(venue, source, date, now)
		day.Venues = append(day.Venues, vd)

		summary.TotalAvailable += vd.TotalAvailable
		if vd.TotalAvailable > 0 {
			summary.VenuesWithAvailability++
		}
		if isToday && vd.HasNow {
			summary.AnyAvailableNow = true
		}
		// First venue wins ties
		if best < 0 || vd.TotalAvailable > day.Venues[best].TotalAvailable {
			best = i
		}
	}

	if summary.VenuesWithAvailability > 0 {
		summary.BestVenue = day.Venues[best].Venue.ShortName
	}
	day.Summary = summary

	return day
}
