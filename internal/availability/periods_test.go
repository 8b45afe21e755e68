package availability

import (
	"reflect"
	"testing"
	"time"
)

func slotsFrom(startHour int, pattern string) []TimeSlot {
	slots := make([]TimeSlot, 0, len(pattern))
	for i, c := range pattern {
		slot := TimeSlot{Start: clock(startHour + i), End: clock(startHour + i + 1), Available: c == '.'}
		if !slot.Available {
			slot.Activity = "Reservert"
		}
		slots = append(slots, slot)
	}
	return slots
}

func TestAvailablePeriods(t *testing.T) {
	tests := []struct {
		name  string
		slots []TimeSlot
		want  []AvailablePeriod
	}{
		{
			name:  "No slots",
			slots: nil,
			want:  []AvailablePeriod{},
		},
		{
			name:  "All booked",
			slots: slotsFrom(7, "xxxxx"),
			want:  []AvailablePeriod{},
		},
		{
			name:  "All available",
			slots: slotsFrom(8, ".............."),
			want:  []AvailablePeriod{{Start: "08:00", End: "22:00", Duration: 14}},
		},
		{
			name:  "Single free hour",
			slots: slotsFrom(10, "x.x"),
			want:  []AvailablePeriod{{Start: "11:00", End: "12:00", Duration: 1}},
		},
		{
			name:  "Open at both ends",
			slots: slotsFrom(7, "..xx...x."),
			want: []AvailablePeriod{
				{Start: "07:00", End: "09:00", Duration: 2},
				{Start: "11:00", End: "14:00", Duration: 3},
				{Start: "15:00", End: "16:00", Duration: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailablePeriods(tt.slots)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailablePeriods() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAvailablePeriodsMolleparken(t *testing.T) {
	slots := GenerateSlots("molleparken", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	want := []AvailablePeriod{
		{Start: "07:00", End: "09:00", Duration: 2},
		{Start: "10:00", End: "12:00", Duration: 2},
		{Start: "13:00", End: "15:00", Duration: 2},
		{Start: "17:00", End: "18:00", Duration: 1},
		{Start: "19:00", End: "21:00", Duration: 2},
	}
	if got := AvailablePeriods(slots); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailablePeriods() = %+v, want %+v", got, want)
	}
}

func TestAvailablePeriodsProperties(t *testing.T) {
	venues := []string{"molleparken", "daelenga", "muselunden", "nordre-asen", "x"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range venues {
		for d := 0; d < 62; d++ {
			date := start.AddDate(0, 0, d)
			slots := GenerateSlots(id, date)
			periods := AvailablePeriods(slots)

			sum := 0
			for _, p := range periods {
				if p.Duration < 1 {
					t.Fatalf("%s %s: period %+v has no duration", id, date.Format("2006-01-02"), p)
				}
				sum += p.Duration
			}
			if sum != TotalAvailableHours(slots) {
				t.Fatalf("%s %s: durations sum to %d, want %d", id, date.Format("2006-01-02"), sum, TotalAvailableHours(slots))
			}

			// Neighbouring periods must be separated by a booked slot
			for i := 1; i < len(periods); i++ {
				if periods[i].Start == periods[i-1].End {
					t.Fatalf("%s %s: periods %d and %d touch", id, date.Format("2006-01-02"), i-1, i)
				}
			}
		}
	}
}

func TestAvailableSlotsAndTotal(t *testing.T) {
	slots := slotsFrom(7, ".x..x")

	free := AvailableSlots(slots)
	if len(free) != 3 {
		t.Fatalf("Expected 3 free slots, got %d", len(free))
	}
	if free[0].Start != "07:00" || free[1].Start != "09:00" || free[2].Start != "10:00" {
		t.Errorf("Free slots out of order: %+v", free)
	}
	if got := TotalAvailableHours(slots); got != 3 {
		t.Errorf("TotalAvailableHours() = %d, want 3", got)
	}
	if got := AvailableSlots(slotsFrom(7, "xx")); len(got) != 0 {
		t.Errorf("Expected no free slots, got %+v", got)
	}
}
