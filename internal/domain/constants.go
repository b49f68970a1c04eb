package domain

// Time arithmetic constants
const (
	MinutesPerHour = 60
	MinutesPerDay  = 1440
)

// EndOfDay is the exclusive upper bound of a day. It is only valid as the end of a TimeRange.
const EndOfDay TimeOfDay = MinutesPerDay

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinPixelsPerHour       = 1
	MaxPixelsPerHour       = 1000
)

// TimeFormat HH:MM, 24h
const TimeFormat = "15:04"
