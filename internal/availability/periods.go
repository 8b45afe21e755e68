package availability

// AvailablePeriods folds contiguous available slots into periods.
// Slots must already be ordered by start time.
func AvailablePeriods(slots []TimeSlot) []AvailablePeriod {
	periods := []AvailablePeriod{}
	var current *AvailablePeriod

	for _, slot := range slots {
		if !slot.Available {
			if current != nil {
				periods = append(periods, *current)
				current = nil
			}
			continue
		}

		if current == nil {
			current = &AvailablePeriod{Start: slot.Start, End: slot.End, Duration: 1}
		} else {
			current.End = slot.End
			current.Duration++
		}
	}

	if current != nil {
		periods = append(periods, *current)
	}

	return periods
}

// AvailableSlots returns the free slots in their original order
func AvailableSlots(slots []TimeSlot) []TimeSlot {
	free := []TimeSlot{}
	for _, slot := range slots {
		if slot.Available {
			free = append(free, slot)
		}
	}
	return free
}

// TotalAvailableHours counts free slots
func TotalAvailableHours(slots []TimeSlot) int {
	total := 0
	for _, slot := range slots {
		if slot.Available {
			total++
		}
	}
	return total
}
