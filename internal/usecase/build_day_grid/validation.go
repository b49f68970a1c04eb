package build_day_grid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// validateSettings проверяет настройки календаря
func validateSettings(settings domain.CalendarSettings) error {
	if settings.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		settings.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes, got %d",
			ErrInvalidSettings, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes, settings.SlotDurationMinutes)
	}

	if settings.Geometry.PixelsPerHour < domain.MinPixelsPerHour ||
		settings.Geometry.PixelsPerHour > domain.MaxPixelsPerHour {
		return fmt.Errorf("%w: pixels per hour must be between %d and %d, got %v",
			ErrInvalidSettings, domain.MinPixelsPerHour, domain.MaxPixelsPerHour, settings.Geometry.PixelsPerHour)
	}

	if _, err := domain.NewTimeRange(settings.Scale.Start, settings.Scale.End); err != nil {
		return fmt.Errorf("%w: scale: %v", ErrInvalidSettings, err)
	}

	if _, err := domain.NewTimeRange(settings.WorkingHours.Range.Start, settings.WorkingHours.Range.End); err != nil {
		return fmt.Errorf("%w: working hours: %v", ErrInvalidSettings, err)
	}

	for weekday, day := range settings.Weekly {
		if !day.IsOpen {
			continue
		}
		if _, err := domain.NewTimeRange(day.Hours.Range.Start, day.Hours.Range.End); err != nil {
			return fmt.Errorf("%w: working hours on %s: %v", ErrInvalidSettings, weekday, err)
		}
	}

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	for i := range req.Appointments {
		appointment := &req.Appointments[i]

		if appointment.ID == uuid.Nil {
			return fmt.Errorf("%w: appointment #%d has no ID", ErrInvalidInput, i)
		}

		if _, err := appointment.Range(); err != nil {
			return fmt.Errorf("%w: appointment id=%s: %v", ErrInvalidInput, appointment.ID, err)
		}
	}

	return nil
}
