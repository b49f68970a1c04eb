package domain

// Slot represents a fixed-duration subdivision of the calendar scale
type Slot struct {
	Range   TimeRange
	IsMajor bool // Range.Start falls exactly on an hour boundary
}

// SlotAvailability slot annotated with working hours and bookings.
// Recomputed from inputs, never mutated in place.
type SlotAvailability struct {
	Slot          Slot
	IsWorkingHour bool // слот целиком внутри рабочего времени
	IsAvailable   bool // слот не пересекается ни с одной бронью
}

// IsBookable returns true if a new appointment may start in the slot
func (s SlotAvailability) IsBookable() bool {
	return s.IsWorkingHour && s.IsAvailable
}
