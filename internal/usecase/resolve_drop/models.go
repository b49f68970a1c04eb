package resolve_drop

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// Request модель запроса на разрешение позиции броска
type Request struct {
	AppointmentID   uuid.UUID            // Перемещаемая запись; uuid.Nil - новая запись
	DurationMinutes int                  // Длительность новой записи; для существующей берется из нее, если 0
	StaffID         uuid.UUID            // Колонка, в которую бросили; uuid.Nil - общая колонка
	PixelY          float64              // Позиция указателя относительно верха колонки
	Date            time.Time            // День сетки; нулевое значение - общие рабочие часы
	Appointments    []domain.Appointment // Записи дня
}

// Response результат броска
type Response struct {
	Time                domain.TimeOfDay     // Время начала после округления
	Range               domain.TimeRange     // Новый интервал записи
	ExceedsWorkingHours bool                 // Запись заканчивается после конца рабочего дня
	Conflicts           []domain.Appointment // Активные записи колонки, пересекающиеся с новым интервалом
}

// HasConflicts returns true if the new interval overlaps other appointments
func (r *Response) HasConflicts() bool {
	return len(r.Conflicts) > 0
}
