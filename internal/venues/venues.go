package venues

import (
	"fmt"
	"sort"

	"github.com/klabast/ledig-bane/internal/availability"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Table is the read-only set of venues, fixed at startup
type Table struct {
	list []availability.Venue
	byID map[string]int
}

// nameOrder collates Norwegian names with æ, ø, å after z. x/text carries the
// Norwegian tailoring under nn only; nb and no fall back to root order.
var nameOrder = language.Make("nn")

// NewTable validates venues and keeps them in the given order
func NewTable(list []availability.Venue) (*Table, error) {
	kept := make([]availability.Venue, len(list))
	copy(kept, list)

	byID := make(map[string]int, len(kept))
	for i, v := range kept {
		if v.ID == "" {
			return nil, fmt.Errorf("venue %q has no id", v.Name)
		}
		if _, dup := byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %q", v.ID)
		}
		byID[v.ID] = i
	}

	return &Table{list: kept, byID: byID}, nil
}

// All returns a copy of every venue in declared order
func (t *Table) All() []availability.Venue {
	out := make([]availability.Venue, len(t.list))
	copy(out, t.list)
	return out
}

// ByName returns a copy of every venue sorted alphabetically by Norwegian rules
func (t *Table) ByName() []availability.Venue {
	out := t.All()
	coll := collate.New(nameOrder)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Get looks up a venue by id
func (t *Table) Get(id string) (availability.Venue, bool) {
	i, ok := t.byID[id]
	if !ok {
		return availability.Venue{}, false
	}
	return t.list[i], true
}

// Len returns the number of venues
func (t *Table) Len() int {
	return len(t.list)
}

// Default returns the built-in venues around Grünerløkka, Torshov and Sagene
func Default() *Table {
	t, err := NewTable(defaultVenues)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultVenues = []availability.Venue{
	{
		ID:          "molleparken",
		Name:        "Mølleparken",
		ShortName:   "Mølleparken",
		Address:     "Seilduksgata 25, 0553 Oslo",
		District:    "Grunerløkka",
		Surface:     "Kunstgress",
		PitchSize:   "7er-bane",
		Lighting:    true,
		Coordinates: availability.Coordinates{Lat: 59.9282, Lng: 10.7598},
		BookingURL:  "https://fotball.gruner.no/next/p/97386/molleparken",
		Color:       "#22c55e",
	},
	{
		ID:          "daelenga",
		Name:        "Dælenenga",
		ShortName:   "Dælenga",
		Address:     "Seilduksgata 30, 0553 Oslo",
		District:    "Grunerløkka",
		Surface:     "Kunstgress",
		PitchSize:   "11er-bane",
		Lighting:    true,
		Coordinates: availability.Coordinates{Lat: 59.9288, Lng: 10.7622},
		BookingURL:  "https://fotball.gruner.no/next/page/kalender",
		NFFID:       2703,
		Color:       "#10b981",
	},
	{
		ID:          "muselunden",
		Name:        "Muselunden",
		ShortName:   "Muselunden",
		Address:     "Åsensvingen 3C, 0488 Oslo",
		District:    "Torshov",
		Surface:     "Kunstgress",
		PitchSize:   "11er + 7er-bane",
		Lighting:    true,
		Coordinates: availability.Coordinates{Lat: 59.9456, Lng: 10.7765},
		NFFID:       8729,
		Color:       "#059669",
	},
	{
		ID:          "nordre-asen",
		Name:        "Nordre Åsen",
		ShortName:   "Nordre Åsen",
		Address:     "Kjelsåsveien 9, 0468 Oslo",
		District:    "Sagene",
		Surface:     "Kunstgress / Naturgress",
		PitchSize:   "11er + flere småbaner",
		Lighting:    true,
		Coordinates: availability.Coordinates{Lat: 59.9510, Lng: 10.7701},
		BookingURL:  "https://arena.club.no/club/skeid",
		NFFID:       7716,
		Color:       "#047857",
	},
}
