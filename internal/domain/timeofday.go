package domain

import (
	"fmt"
	"time"
)

// TimeOfDay number of minutes since midnight, 0..1439
type TimeOfDay int

// NewTimeOfDay создает время из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay(hour*MinutesPerHour + minute), nil
}

// ParseTimeOfDay разбирает строку формата HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTime, s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// TimeOfDayFromTime берет время суток (по локальным часам t)
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*MinutesPerHour + t.Minute())
}

// Valid returns true if the value lies within a single day
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int {
	return int(t) / MinutesPerHour
}

func (t TimeOfDay) Minute() int {
	return int(t) % MinutesPerHour
}

// IsMajor returns true if the time falls exactly on an hour boundary
func (t TimeOfDay) IsMajor() bool {
	return t.Minute() == 0
}

// IsHalfHour returns true for HH:30
func (t TimeOfDay) IsHalfHour() bool {
	return t.Minute() == 30
}

// AddMinutes сдвигает время на n минут, не выходя за пределы суток
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	result := t + TimeOfDay(n)
	if !result.Valid() {
		return 0, fmt.Errorf("%w: %s %+d min is outside the day", ErrInvalidTime, t, n)
	}
	return result, nil
}

// String returns HH:MM. EndOfDay is rendered as 24:00.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
