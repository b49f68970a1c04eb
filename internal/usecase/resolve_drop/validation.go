package resolve_drop

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// validateSettings проверяет настройки, нужные для перевода позиции во время
func validateSettings(settings domain.CalendarSettings) error {
	if settings.SnapMinutes <= 0 || settings.SnapMinutes > domain.MinutesPerHour {
		return fmt.Errorf("%w: snap must be between 1 and %d minutes, got %d",
			ErrInvalidSettings, domain.MinutesPerHour, settings.SnapMinutes)
	}

	if settings.Geometry.PixelsPerHour < domain.MinPixelsPerHour ||
		settings.Geometry.PixelsPerHour > domain.MaxPixelsPerHour {
		return fmt.Errorf("%w: pixels per hour must be between %d and %d, got %v",
			ErrInvalidSettings, domain.MinPixelsPerHour, domain.MaxPixelsPerHour, settings.Geometry.PixelsPerHour)
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

	if math.IsNaN(req.PixelY) || math.IsInf(req.PixelY, 0) {
		return fmt.Errorf("%w: pixelY must be finite", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.AppointmentID == uuid.Nil && req.DurationMinutes == 0 {
		return fmt.Errorf("%w: duration is required for a new appointment", ErrInvalidInput)
	}

	return nil
}

// resolveDuration возвращает длительность перемещаемой записи
func resolveDuration(req *Request) (int, error) {
	if req.DurationMinutes > 0 {
		return req.DurationMinutes, nil
	}

	for i := range req.Appointments {
		if req.Appointments[i].ID != req.AppointmentID {
			continue
		}
		r, err := req.Appointments[i].Range()
		if err != nil {
			return 0, fmt.Errorf("%w: appointment id=%s: %v", ErrInvalidInput, req.AppointmentID, err)
		}
		return r.Duration(), nil
	}

	return 0, ErrAppointmentNotFound
}

// candidateRange строит интервал записи от времени броска
func candidateRange(start domain.TimeOfDay, duration int) (domain.TimeRange, error) {
	end := start + domain.TimeOfDay(duration)
	r, err := domain.NewTimeRange(start, end)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: appointment would end after midnight", ErrNoValidPlacement)
	}
	return r, nil
}
