package grid

import (
	"iter"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// Classify помечает каждый слот флагами рабочего времени и доступности.
//
// IsWorkingHour: слот целиком внутри workingRange.
// IsAvailable: слот не пересекается ни с одной бронью (полуоткрытые интервалы,
// граничащие интервалы не пересекаются).
// Флаги независимы: слот вне рабочего времени тоже проверяется на доступность.
func Classify(slots iter.Seq[domain.Slot], workingRange domain.TimeRange, bookings []domain.Booking) []domain.SlotAvailability {
	result := make([]domain.SlotAvailability, 0)

	for slot := range slots {
		result = append(result, domain.SlotAvailability{
			Slot:          slot,
			IsWorkingHour: workingRange.Contains(slot.Range),
			IsAvailable:   countOverlappingBookings(slot.Range, bookings) == 0,
		})
	}

	return result
}

// countOverlappingBookings подсчитывает количество броней, пересекающихся с интервалом
//
// Примеры:
// - Слот 09:50-10:20, бронь 10:00-11:00 → ЕСТЬ пересечение
// - Слот 11:00-11:30, бронь 10:00-11:00 → НЕТ пересечения (граничат)
func countOverlappingBookings(r domain.TimeRange, bookings []domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking.Overlaps(r) {
			count++
		}
	}
	return count
}

// BookingsOf returns bookings of the active appointments only
func BookingsOf(appointments []domain.Appointment) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(appointments))
	for i := range appointments {
		if !appointments[i].IsActive() {
			continue
		}
		bookings = append(bookings, appointments[i].Booking())
	}
	return bookings
}
