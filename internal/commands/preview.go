package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"github.com/klabast/ledig-bane/internal/config"
	"github.com/klabast/ledig-bane/internal/venues"
)

var statusMarks = map[availability.TimeStatus]string{
	availability.StatusPast: "forbi",
	availability.StatusNow:  "nå",
	availability.StatusSoon: "snart",
}

// Preview handles the preview subcommand
func Preview(args []string, cfg *config.Config) {
	if err := runPreview(args, cfg, time.Now(), os.Stdout); err != nil {
		fail("Error: %v\n", err)
	}
}

// runPreview prints the day overview as plain text
func runPreview(args []string, cfg *config.Config, now time.Time, w io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(w)
	dateFlag := fs.String("date", "", "Date to show (YYYY-MM-DD, default today)")
	venueFlag := fs.String("venue", "", "Only show this venue id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	now = now.In(loc)
	window := availability.NewWindow(now, cfg.MaxDaysAhead)

	date := window.First
	if *dateFlag != "" {
		date, err = time.ParseInLocation("2006-01-02", *dateFlag, loc)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *dateFlag, err)
		}
		if !window.Contains(date) {
			return fmt.Errorf("date %s is outside %s..%s", *dateFlag,
				window.First.Format("2006-01-02"), window.Last.Format("2006-01-02"))
		}
	}

	table, err := venues.LoadFile(cfg.VenuesFile)
	if err != nil {
		return err
	}

	list := table.All()
	if *venueFlag != "" {
		venue, ok := table.Get(*venueFlag)
		if !ok {
			return fmt.Errorf("unknown venue %q", *venueFlag)
		}
		list = []availability.Venue{venue}
	}

	day := availability.BuildDay(list, availability.MockSource{}, date, now)
	writeDay(w, day)
	return nil
}

func writeDay(w io.Writer, day availability.Day) {
	fmt.Fprintf(w, "Ledige tider %s\n\n", day.Label)

	for _, vd := range day.Venues {
		fmt.Fprintf(w, "%-16s %s\n", vd.Venue.Name, vd.Label)

		var bar strings.Builder
		for _, slot := range vd.Slots {
			if slot.Available {
				bar.WriteByte('.')
			} else {
				bar.WriteByte('#')
			}
		}
		if len(vd.Slots) > 0 {
			fmt.Fprintf(w, "  %s  %s\n", bar.String(), vd.Slots[0].Start)
		}

		for _, p := range vd.Periods {
			line := fmt.Sprintf("  %s-%s  %s", p.Start, p.End, p.Label)
			if mark, ok := statusMarks[p.Status]; ok {
				line += " (" + mark + ")"
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	s := day.Summary
	fmt.Fprintf(w, "Totalt %s på %d av %d baner\n", availability.FormatHours(s.TotalAvailable), s.VenuesWithAvailability, s.VenueCount)
	if s.BestVenue != "" {
		fmt.Fprintf(w, "Mest ledig: %s\n", s.BestVenue)
	}
	if s.AnyAvailableNow {
		fmt.Fprintln(w, "Ledig nå!")
	}
}
