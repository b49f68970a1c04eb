package grid

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// Placement vertical geometry of an appointment card in a day column
type Placement struct {
	Appointment domain.Appointment
	Top         float64
	Height      float64
}

// ToPixelOffset смещение времени от начала сетки в пикселях.
// Время раньше начала сетки дает отрицательное смещение (карточка уходит выше видимой области).
func ToPixelOffset(t domain.TimeOfDay, geometry domain.GridGeometry) float64 {
	return float64(t-geometry.DayStart) * geometry.PixelsPerHour / domain.MinutesPerHour
}

// ToPixelHeight высота интервала в пикселях
func ToPixelHeight(r domain.TimeRange, geometry domain.GridGeometry) float64 {
	return float64(r.End-r.Start) * geometry.PixelsPerHour / domain.MinutesPerHour
}

// ToNearestTime обратное преобразование: позиция указателя → время, округленное до snapMinutes.
//
// Час = floor(pixelY / pixelsPerHour) + час начала сетки. Остаток внутри часа вместе
// с минутами начала сетки (08:30 → 30) округляется до ближайшего кратного snapMinutes;
// перебор за 60 переносится на следующий час.
// Если итоговое время вне workingRange (границы включительно), возвращает false: бросок игнорируется.
func ToNearestTime(pixelY float64, geometry domain.GridGeometry, snapMinutes int, workingRange domain.TimeRange) (domain.TimeOfDay, bool) {
	if snapMinutes <= 0 || geometry.PixelsPerHour <= 0 {
		return 0, false
	}
	if math.IsNaN(pixelY) || math.IsInf(pixelY, 0) {
		return 0, false
	}

	hours := math.Floor(pixelY / geometry.PixelsPerHour)
	remainder := pixelY - hours*geometry.PixelsPerHour
	minutes := remainder*domain.MinutesPerHour/geometry.PixelsPerHour + float64(geometry.DayStart.Minute())
	snapped := math.Round(minutes/float64(snapMinutes)) * float64(snapMinutes)

	total := (hours+float64(geometry.DayStart.Hour()))*domain.MinutesPerHour + snapped
	if total < float64(workingRange.Start) || total > float64(workingRange.End) {
		return 0, false
	}

	t := domain.TimeOfDay(total)
	if !t.Valid() {
		return 0, false
	}
	return t, true
}

// ScaleHeight full column height for the visible scale
func ScaleHeight(scale domain.TimeRange, geometry domain.GridGeometry) float64 {
	return ToPixelHeight(scale, geometry)
}

// PlaceAppointments вычисляет позиции карточек активных записей.
// Неактивные записи (отмена, неявка, лист ожидания) на сетку не попадают.
// Результат упорядочен по времени начала, затем по ID.
func PlaceAppointments(appointments []domain.Appointment, geometry domain.GridGeometry) ([]Placement, error) {
	placements := make([]Placement, 0, len(appointments))

	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		r, err := appointment.Range()
		if err != nil {
			return nil, fmt.Errorf("appointment id=%s: %w", appointment.ID, err)
		}

		placements = append(placements, Placement{
			Appointment: appointment,
			Top:         ToPixelOffset(r.Start, geometry),
			Height:      ToPixelHeight(r, geometry),
		})
	}

	slices.SortStableFunc(placements, func(a, b Placement) int {
		if c := cmp.Compare(a.Appointment.Start, b.Appointment.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Appointment.ID.String(), b.Appointment.ID.String())
	})

	return placements, nil
}
