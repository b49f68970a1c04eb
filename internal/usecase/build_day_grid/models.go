package build_day_grid

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
	"github.com/m04kA/SMC-CalendarGrid/internal/grid"
)

// Request модель запроса на построение сетки дня
type Request struct {
	StaffID      uuid.UUID            // Колонка сотрудника; uuid.Nil - все записи салона
	Date         time.Time            // День сетки; нулевое значение - общие рабочие часы
	Appointments []domain.Appointment // Записи на день
}

// Response сетка дня
type Response struct {
	StaffID      uuid.UUID
	Scale        domain.TimeRange          // Видимая шкала
	IsOpen       bool                      // false - выходной, ни один слот не рабочий
	WorkingHours domain.TimeRange          // Рабочее время дня; пустой интервал в выходной
	Slots        []domain.SlotAvailability // Слоты с флагами рабочего времени и доступности
	Placements   []grid.Placement          // Карточки активных записей
	ColumnHeight float64                   // Высота колонки в пикселях
}

// BookableSlots returns the slots a new appointment may start in
func (r *Response) BookableSlots() []domain.SlotAvailability {
	result := make([]domain.SlotAvailability, 0, len(r.Slots))
	for _, slot := range r.Slots {
		if slot.IsBookable() {
			result = append(result, slot)
		}
	}
	return result
}
