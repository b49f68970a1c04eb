package build_day_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
	"github.com/m04kA/SMC-CalendarGrid/internal/grid"
)

// UseCase use case построения сетки дня для календаря
type UseCase struct {
	settings domain.CalendarSettings
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если метрики выключены.
func NewUseCase(settings domain.CalendarSettings, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		settings: settings,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case построения сетки дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startedAt := time.Now()

	resp, err := uc.execute(ctx, req)

	if uc.metrics != nil {
		result := "ok"
		slots := 0
		if err != nil {
			result = "error"
		} else {
			slots = len(resp.Slots)
		}
		uc.metrics.ObserveGrid(result, slots, time.Since(startedAt))
	}

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Валидация настроек и входных данных
	if err := validateSettings(uc.settings); err != nil {
		uc.logger.Error("BuildDayGrid: invalid settings: %v", err)
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildDayGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Рабочее время на день недели
	day := uc.settings.DayScheduleFor(req.Date)
	workingRange := day.WorkingRange()
	if !day.IsOpen {
		uc.logger.Info("BuildDayGrid: %s is a day off, no working slots", dateLabel(req.Date))
	}

	uc.logger.Info("BuildDayGrid: staff=%s, date=%s, appointments=%d, scale=%s, working=%s",
		staffLabel(req.StaffID), dateLabel(req.Date), len(req.Appointments), uc.settings.Scale, workingRange)

	// 3. Оставляем записи нужной колонки
	appointments := filterByStaff(req.Appointments, req.StaffID)
	if uc.metrics != nil {
		for i := range appointments {
			uc.metrics.ObserveAppointment(appointments[i].Status.String())
		}
	}

	// 4. Генерируем слоты шкалы
	slotSeq, err := grid.GenerateSlots(uc.settings.Scale, uc.settings.SlotDurationMinutes, uc.settings.MajorHoursOnly)
	if err != nil {
		uc.logger.Error("BuildDayGrid: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInvalidSettings, err)
	}

	// 5. Классифицируем слоты по рабочему времени и активным записям
	slots := grid.Classify(slotSeq, workingRange, grid.BookingsOf(appointments))

	// 6. Раскладываем карточки записей по сетке
	placements, err := grid.PlaceAppointments(appointments, uc.settings.Geometry)
	if err != nil {
		uc.logger.Warn("BuildDayGrid: failed to place appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("BuildDayGrid: generated %d slots and %d placements for staff=%s",
		len(slots), len(placements), staffLabel(req.StaffID))

	return &Response{
		StaffID:      req.StaffID,
		Scale:        uc.settings.Scale,
		IsOpen:       day.IsOpen,
		WorkingHours: workingRange,
		Slots:        slots,
		Placements:   placements,
		ColumnHeight: grid.ScaleHeight(uc.settings.Scale, uc.settings.Geometry),
	}, nil
}

// filterByStaff оставляет записи сотрудника; uuid.Nil - все записи
func filterByStaff(appointments []domain.Appointment, staffID uuid.UUID) []domain.Appointment {
	if staffID == uuid.Nil {
		return appointments
	}

	result := make([]domain.Appointment, 0, len(appointments))
	for i := range appointments {
		if appointments[i].HasStaff(staffID) {
			result = append(result, appointments[i])
		}
	}
	return result
}

func staffLabel(staffID uuid.UUID) string {
	if staffID == uuid.Nil {
		return "all"
	}
	return staffID.String()
}

func dateLabel(date time.Time) string {
	if date.IsZero() {
		return "any"
	}
	return date.Format(time.DateOnly) + " " + date.Weekday().String()
}
