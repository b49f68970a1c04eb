// Package grid implements the availability grid model of the day calendar:
// slot generation, slot classification and pixel placement of appointments.
// All functions are pure and safe for concurrent use.
package grid

import (
	"fmt"
	"iter"
	"slices"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// GenerateSlots делит диапазон на слоты фиксированной длительности.
//
// Слоты начинаются с r.Start с шагом slotDurationMinutes, пока начало слота <= r.End:
// последний слот, попадающий ровно на r.End, тоже выдается (подпись закрывающей границы шкалы).
// В режиме majorOnly шаг всегда 60 минут и выдаются только слоты, начинающиеся ровно в начале часа.
//
// Конец слота = начало + шаг, но не дальше конца суток.
// Возвращаемая последовательность ленивая и может перебираться повторно.
func GenerateSlots(r domain.TimeRange, slotDurationMinutes int, majorOnly bool) (iter.Seq[domain.Slot], error) {
	if slotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", domain.ErrInvalidRange, slotDurationMinutes)
	}
	if _, err := domain.NewTimeRange(r.Start, r.End); err != nil {
		return nil, err
	}

	step := domain.TimeOfDay(slotDurationMinutes)
	if majorOnly {
		step = domain.MinutesPerHour
	}

	return func(yield func(domain.Slot) bool) {
		for start := r.Start; start <= r.End && start < domain.EndOfDay; start += step {
			isMajor := start.IsMajor()
			if majorOnly && !isMajor {
				continue
			}

			slot := domain.Slot{
				Range:   domain.TimeRange{Start: start, End: min(start+step, domain.EndOfDay)},
				IsMajor: isMajor,
			}
			if !yield(slot) {
				return
			}
		}
	}, nil
}

// CollectSlots generates the slots into a slice
func CollectSlots(r domain.TimeRange, slotDurationMinutes int, majorOnly bool) ([]domain.Slot, error) {
	seq, err := GenerateSlots(r, slotDurationMinutes, majorOnly)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
