package domain

// Booking existing reserved interval, used only to test overlap against slots
type Booking struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Range returns the booking as a half-open range without validation
func (b Booking) Range() TimeRange {
	return TimeRange{Start: b.Start, End: b.End}
}

// Overlaps returns true if the booking intersects r
func (b Booking) Overlaps(r TimeRange) bool {
	return b.Start < r.End && b.End > r.Start
}
