package domain

import "time"

// DaySchedule рабочее время на конкретный день недели
type DaySchedule struct {
	IsOpen bool
	Hours  WorkingHours
}

// ClosedDay выходной день
var ClosedDay = DaySchedule{IsOpen: false}

// OpenDay рабочий день с заданными часами
func OpenDay(r TimeRange) DaySchedule {
	return DaySchedule{IsOpen: true, Hours: WorkingHours{Range: r}}
}

// WorkingRange returns the working interval of the day.
// A closed day yields an empty range that contains no slot.
func (d DaySchedule) WorkingRange() TimeRange {
	if !d.IsOpen {
		return TimeRange{}
	}
	return d.Hours.Range
}

// WeeklySchedule переопределения рабочего времени по дням недели.
// День без записи работает по общим рабочим часам.
type WeeklySchedule map[time.Weekday]DaySchedule

// ForDay возвращает расписание на дату; fallback - общие рабочие часы
func (w WeeklySchedule) ForDay(date time.Time, fallback WorkingHours) DaySchedule {
	if day, ok := w[date.Weekday()]; ok {
		return day
	}
	return DaySchedule{IsOpen: true, Hours: fallback}
}
