package domain

import "fmt"

// TimeRange half-open interval [Start, End) within one day.
// Ranges spanning midnight are not supported.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange validates ordering. End may equal EndOfDay.
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Valid() {
		return TimeRange{}, fmt.Errorf("%w: start %d is outside the day", ErrInvalidRange, start)
	}
	if end <= start || end > EndOfDay {
		return TimeRange{}, fmt.Errorf("%w: start=%s, end=%s", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// MustTimeRange is NewTimeRange for static values; it panics on error.
func MustTimeRange(start, end TimeOfDay) TimeRange {
	r, err := NewTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseTimeRange разбирает пару строк HH:MM
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

// Duration returns the length of the range in minutes
func (r TimeRange) Duration() int {
	return int(r.End - r.Start)
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Интервалы, которые только граничат (10:00-11:00 и 11:00-11:30), не пересекаются.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return other.Start < r.End && other.End > r.Start
}

// Contains returns true if other lies fully inside r
func (r TimeRange) Contains(other TimeRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
