package resolve_drop

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
	"github.com/m04kA/SMC-CalendarGrid/pkg/logger"
	"github.com/m04kA/SMC-CalendarGrid/pkg/metrics"
)

func testSettings() domain.CalendarSettings {
	working := domain.MustTimeRange(540, 1080)
	return domain.CalendarSettings{
		WorkingHours:        domain.WorkingHours{Range: working},
		Scale:               working,
		SlotDurationMinutes: 15,
		SnapMinutes:         15,
		Geometry:            domain.GridGeometry{DayStart: 540, PixelsPerHour: 60},
	}
}

func TestExecute_MovesAppointment(t *testing.T) {
	anna := uuid.New()
	moving := uuid.New()
	other := uuid.New()
	m := metrics.New("test_drop")
	uc := NewUseCase(testSettings(), m, logger.NewNop())

	appointments := []domain.Appointment{
		{ID: moving, StaffIDs: []uuid.UUID{anna}, Start: 540, End: 600, Status: domain.StatusConfirmed},
		{ID: other, StaffIDs: []uuid.UUID{anna}, Start: 630, End: 690, Status: domain.StatusConfirmed},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: moving,
		StaffID:       anna,
		PixelY:        60,
		Appointments:  appointments,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TimeOfDay(600), resp.Time)
	assert.Equal(t, domain.TimeRange{Start: 600, End: 660}, resp.Range)
	assert.False(t, resp.ExceedsWorkingHours)
	require.True(t, resp.HasConflicts())
	assert.Equal(t, other, resp.Conflicts[0].ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DropsResolved.WithLabelValues("conflict")))
}

func TestExecute_NewAppointmentWithoutConflicts(t *testing.T) {
	m := metrics.New("test_drop")
	uc := NewUseCase(testSettings(), m, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		DurationMinutes: 90,
		PixelY:          488,
	})
	require.NoError(t, err)

	// 08:08 от начала → 17:00 + 8 мин → 17:15 после округления
	assert.Equal(t, domain.TimeOfDay(1035), resp.Time)
	assert.Equal(t, domain.TimeRange{Start: 1035, End: 1125}, resp.Range)
	assert.True(t, resp.ExceedsWorkingHours)
	assert.False(t, resp.HasConflicts())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DropsResolved.WithLabelValues("placed")))
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	m := metrics.New("test_drop")
	uc := NewUseCase(testSettings(), m, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: 600})
	assert.ErrorIs(t, err, ErrNoValidPlacement)

	_, err = uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: -20})
	assert.ErrorIs(t, err, ErrNoValidPlacement)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DropsResolved.WithLabelValues("rejected")))
}

func TestExecute_PastMidnight(t *testing.T) {
	settings := testSettings()
	settings.WorkingHours.Range = domain.MustTimeRange(1200, domain.EndOfDay)
	settings.Geometry.DayStart = 1200
	uc := NewUseCase(settings, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 60, PixelY: 210})
	assert.ErrorIs(t, err, ErrNoValidPlacement)
}

func TestExecute_InvalidInput(t *testing.T) {
	m := metrics.New("test_drop")
	uc := NewUseCase(testSettings(), m, logger.NewNop())

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{name: "nil request", req: nil, want: ErrInvalidInput},
		{name: "nan position", req: &Request{DurationMinutes: 30, PixelY: math.NaN()}, want: ErrInvalidInput},
		{name: "negative duration", req: &Request{DurationMinutes: -5}, want: ErrInvalidInput},
		{name: "new appointment without duration", req: &Request{PixelY: 60}, want: ErrInvalidInput},
		{name: "unknown appointment", req: &Request{AppointmentID: uuid.New(), PixelY: 60}, want: ErrAppointmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, float64(len(tests)), testutil.ToFloat64(m.DropsResolved.WithLabelValues("invalid")))
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUseCase(testSettings(), nil, logger.NewNop()).Execute(ctx, &Request{DurationMinutes: 30})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *domain.CalendarSettings)
	}{
		{name: "zero snap", modify: func(s *domain.CalendarSettings) { s.SnapMinutes = 0 }},
		{name: "zero pixels per hour", modify: func(s *domain.CalendarSettings) { s.Geometry.PixelsPerHour = 0 }},
		{name: "empty working hours", modify: func(s *domain.CalendarSettings) { s.WorkingHours.Range = domain.TimeRange{} }},
		{name: "reversed weekday hours", modify: func(s *domain.CalendarSettings) {
			s.Weekly = domain.WeeklySchedule{
				time.Friday: {IsOpen: true, Hours: domain.WorkingHours{Range: domain.TimeRange{Start: 700, End: 600}}},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			tt.modify(&settings)
			m := metrics.New("test_drop")

			_, err := NewUseCase(settings, m, logger.NewNop()).Execute(context.Background(), &Request{
				DurationMinutes: 30,
				PixelY:          60,
			})
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.NotErrorIs(t, err, ErrNoValidPlacement)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.DropsResolved.WithLabelValues("invalid")))
		})
	}
}

func TestExecute_WeeklySchedule(t *testing.T) {
	settings := testSettings()
	settings.Weekly = domain.WeeklySchedule{
		time.Saturday: domain.OpenDay(domain.MustTimeRange(600, 840)),
		time.Sunday:   domain.ClosedDay,
	}
	uc := NewUseCase(settings, nil, logger.NewNop())

	saturday := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("closed day", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: 60, Date: sunday})
		assert.ErrorIs(t, err, ErrNoValidPlacement)
	})

	t.Run("before shortened day opens", func(t *testing.T) {
		// 09:00 при субботнем начале в 10:00
		_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: 0, Date: saturday})
		assert.ErrorIs(t, err, ErrNoValidPlacement)
	})

	t.Run("exceeds shortened day", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{DurationMinutes: 60, PixelY: 270, Date: saturday})
		require.NoError(t, err)

		assert.Equal(t, domain.TimeRange{Start: 810, End: 870}, resp.Range)
		assert.True(t, resp.ExceedsWorkingHours)
	})
}

func TestExecute_HalfHourScaleStart(t *testing.T) {
	settings := testSettings()
	settings.WorkingHours.Range = domain.MustTimeRange(510, 1200)
	settings.Scale = settings.WorkingHours.Range
	settings.Geometry.DayStart = 510
	uc := NewUseCase(settings, nil, logger.NewNop())

	// верх колонки
	resp, err := uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: 0})
	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDay(510), resp.Time)

	// 120 px ниже 08:30 - это 10:30
	resp, err = uc.Execute(context.Background(), &Request{DurationMinutes: 30, PixelY: 120})
	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDay(630), resp.Time)
}
