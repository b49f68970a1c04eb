package resolve_drop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
	"github.com/m04kA/SMC-CalendarGrid/internal/grid"
)

// Drop results reported to metrics
const (
	resultPlaced   = "placed"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultInvalid  = "invalid"
)

// UseCase use case перевода позиции указателя во время записи (drag-and-drop)
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

// Execute выполняет use case разрешения броска
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startedAt := time.Now()

	resp, err := uc.execute(ctx, req)

	if uc.metrics != nil {
		uc.metrics.ObserveDrop(dropResult(resp, err), time.Since(startedAt))
	}

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Валидация настроек и входных данных
	if err := validateSettings(uc.settings); err != nil {
		uc.logger.Warn("ResolveDrop: invalid settings: %v", err)
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveDrop: validation failed: %v", err)
		return nil, err
	}

	duration, err := resolveDuration(req)
	if err != nil {
		uc.logger.Warn("ResolveDrop: appointment id=%s: %v", req.AppointmentID, err)
		return nil, err
	}

	// 2. Рабочее время на день недели
	day := uc.settings.DayScheduleFor(req.Date)
	if !day.IsOpen {
		uc.logger.Info("ResolveDrop: %s is a day off, drop ignored", req.Date.Format(time.DateOnly))
		return nil, fmt.Errorf("%w: day off", ErrNoValidPlacement)
	}
	workingRange := day.WorkingRange()

	// 3. Позиция → время, округленное до шага привязки
	start, ok := grid.ToNearestTime(req.PixelY, uc.settings.Geometry, uc.settings.SnapMinutes, workingRange)
	if !ok {
		uc.logger.Info("ResolveDrop: y=%.1f is outside working hours %s, drop ignored",
			req.PixelY, workingRange)
		return nil, ErrNoValidPlacement
	}

	// 4. Новый интервал записи
	r, err := candidateRange(start, duration)
	if err != nil {
		uc.logger.Info("ResolveDrop: y=%.1f start=%s duration=%d: %v", req.PixelY, start, duration, err)
		return nil, err
	}

	// 5. Пересечения с записями той же колонки
	conflicts := grid.Conflicts(r, req.StaffID, req.AppointmentID, req.Appointments)

	uc.logger.Info("ResolveDrop: y=%.1f → %s, conflicts=%d", req.PixelY, r, len(conflicts))

	return &Response{
		Time:                start,
		Range:               r,
		ExceedsWorkingHours: r.End > workingRange.End,
		Conflicts:           conflicts,
	}, nil
}

func dropResult(resp *Response, err error) string {
	switch {
	case err == nil && resp.HasConflicts():
		return resultConflict
	case err == nil:
		return resultPlaced
	case errors.Is(err, ErrNoValidPlacement):
		return resultRejected
	default:
		return resultInvalid
	}
}
