// Package crmpayload translates CRM appointment payloads into domain values.
// Legacy singular relation fields are folded into lists here so the grid
// only ever sees one shape.
package crmpayload

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Adapter переводит записи CRM в доменные
type Adapter struct {
	location *time.Location
	validate *validator.Validate
	log      Logger
}

// NewAdapter создает адаптер; время записей переводится в location
func NewAdapter(location *time.Location, log Logger) *Adapter {
	if location == nil {
		location = time.Local
	}
	return &Adapter{
		location: location,
		validate: validator.New(),
		log:      log,
	}
}

// DecodeDay читает JSON-конверт и возвращает записи, начинающиеся в день day.
// Записи других дней пропускаются.
func (a *Adapter) DecodeDay(r io.Reader, day time.Time) ([]domain.Appointment, error) {
	var envelope Envelope
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	y, m, d := day.In(a.location).Date()
	result := make([]domain.Appointment, 0, len(envelope.Appointments))

	for i := range envelope.Appointments {
		p := &envelope.Appointments[i]

		start := p.StartTime.In(a.location)
		if sy, sm, sd := start.Date(); sy != y || sm != m || sd != d {
			a.log.Info("Skipping appointment id=%s: starts on %s", p.ID, start.Format(time.DateOnly))
			continue
		}

		appointment, err := a.Normalize(p)
		if err != nil {
			a.log.Warn("Invalid appointment id=%s: %v", p.ID, err)
			return nil, err
		}
		result = append(result, appointment)
	}

	return result, nil
}

// Normalize переводит одну запись CRM в доменную
func (a *Adapter) Normalize(p *AppointmentPayload) (domain.Appointment, error) {
	if err := a.validate.Struct(p); err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: id=%s: %v", ErrInvalidPayload, p.ID, err)
	}

	status, err := domain.ParseAppointmentStatus(p.Status)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: id=%s: %v", ErrInvalidPayload, p.ID, err)
	}

	start, end, err := a.interval(p)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: id=%s: %v", ErrInvalidPayload, p.ID, err)
	}

	// uuid уже проверены валидатором
	return domain.Appointment{
		ID:         uuid.MustParse(p.ID),
		ClientID:   uuid.MustParse(p.ClientID),
		StaffIDs:   mergeRelation(p.EmployeeID, p.StaffIDs),
		PetIDs:     mergeRelation(p.PetID, p.PetIDs),
		ServiceIDs: mergeRelation(p.ServiceID, p.ServiceIDs),
		Start:      start,
		End:        end,
		Status:     status,
	}, nil
}

// interval вычисляет время начала и конца записи внутри одних суток
func (a *Adapter) interval(p *AppointmentPayload) (domain.TimeOfDay, domain.TimeOfDay, error) {
	if p.StartTime.IsZero() {
		return 0, 0, fmt.Errorf("startTime is required")
	}
	startAt := p.StartTime.In(a.location)

	var endAt time.Time
	switch {
	case p.EndTime != nil:
		endAt = p.EndTime.In(a.location)
	case p.Duration > 0:
		endAt = startAt.Add(time.Duration(p.Duration) * time.Minute)
	default:
		return 0, 0, fmt.Errorf("neither endTime nor duration is set")
	}

	start := domain.TimeOfDayFromTime(startAt)
	end := domain.TimeOfDayFromTime(endAt)

	dayStart := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, a.location)
	nextDay := dayStart.AddDate(0, 0, 1)
	switch {
	case endAt.Equal(nextDay):
		end = domain.EndOfDay
	case !endAt.Before(nextDay):
		return 0, 0, fmt.Errorf("appointment spans midnight")
	}

	if _, err := domain.NewTimeRange(start, end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// mergeRelation сводит старое единичное поле и новый список к одному списку.
// Единичное значение становится первым (основным), дубликаты удаляются.
func mergeRelation(single string, list []string) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(list)+1)
	seen := make(map[uuid.UUID]struct{}, len(list)+1)

	add := func(raw string) {
		if raw == "" {
			return
		}
		id := uuid.MustParse(raw)
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	add(single)
	for _, raw := range list {
		add(raw)
	}

	return result
}
