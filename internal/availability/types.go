package availability

// Coordinates is a geographic position
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Venue describes one physical pitch
type Venue struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ShortName   string      `json:"shortName"`
	Address     string      `json:"address"`
	District    string      `json:"district"`
	Surface     string      `json:"surface"`
	PitchSize   string      `json:"pitchSize"`
	Lighting    bool        `json:"lighting"`
	Coordinates Coordinates `json:"coordinates"`
	BookingURL  string      `json:"bookingUrl,omitempty"`
	NFFID       int         `json:"nffId,omitempty"`
	Color       string      `json:"color"`
}

// TimeSlot is one hour on one day for one venue
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Activity  string `json:"activity,omitempty"`
}

// AvailablePeriod is a maximal run of contiguous available slots
type AvailablePeriod struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
}

// TimeStatus classifies a slot relative to the current moment
type TimeStatus string

const (
	StatusPast   TimeStatus = "past"
	StatusNow    TimeStatus = "now"
	StatusSoon   TimeStatus = "soon"
	StatusFuture TimeStatus = "future"
)
