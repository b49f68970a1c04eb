package domain

import "time"

// WorkingHours daily interval during which bookings are permitted.
// Built once from configuration and passed to every component that needs it.
type WorkingHours struct {
	Range TimeRange
}

// Contains returns true if t is inside working hours, both bounds inclusive
func (w WorkingHours) Contains(t TimeOfDay) bool {
	return t >= w.Range.Start && t <= w.Range.End
}

// GridGeometry scale and origin used to place time-based elements vertically
type GridGeometry struct {
	DayStart      TimeOfDay
	PixelsPerHour float64
}

// CalendarSettings конфигурация календарной сетки, передается явно во все компоненты
type CalendarSettings struct {
	WorkingHours        WorkingHours   // общие рабочие часы
	Weekly              WeeklySchedule // переопределения по дням недели, может быть nil
	Scale               TimeRange      // видимая шкала, по умолчанию совпадает с рабочими часами
	SlotDurationMinutes int
	SnapMinutes         int
	MajorHoursOnly      bool
	Geometry            GridGeometry
}

// DayScheduleFor возвращает рабочее время на дату.
// Нулевая дата означает "без учета дня недели" и дает общие рабочие часы.
func (s CalendarSettings) DayScheduleFor(date time.Time) DaySchedule {
	if date.IsZero() {
		return DaySchedule{IsOpen: true, Hours: s.WorkingHours}
	}
	return s.Weekly.ForDay(date, s.WorkingHours)
}
