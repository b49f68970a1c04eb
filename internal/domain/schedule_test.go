package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarSettings_DayScheduleFor(t *testing.T) {
	settings := CalendarSettings{
		WorkingHours: WorkingHours{Range: MustTimeRange(540, 1080)},
		Weekly: WeeklySchedule{
			time.Saturday: OpenDay(MustTimeRange(600, 900)),
			time.Sunday:   ClosedDay,
		},
	}

	monday := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		wantOpen bool
		want     TimeRange
	}{
		{name: "weekday falls back to common hours", date: monday, wantOpen: true, want: TimeRange{Start: 540, End: 1080}},
		{name: "shortened day", date: saturday, wantOpen: true, want: TimeRange{Start: 600, End: 900}},
		{name: "closed day", date: sunday, wantOpen: false, want: TimeRange{}},
		{name: "no date", date: time.Time{}, wantOpen: true, want: TimeRange{Start: 540, End: 1080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := settings.DayScheduleFor(tt.date)
			assert.Equal(t, tt.wantOpen, day.IsOpen)
			assert.Equal(t, tt.want, day.WorkingRange())
		})
	}
}

func TestWeeklySchedule_NilUsesFallback(t *testing.T) {
	var weekly WeeklySchedule
	fallback := WorkingHours{Range: MustTimeRange(480, 1200)}

	day := weekly.ForDay(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), fallback)
	assert.True(t, day.IsOpen)
	assert.Equal(t, fallback, day.Hours)
}

func TestClosedDay_ContainsNoSlot(t *testing.T) {
	empty := ClosedDay.WorkingRange()
	assert.False(t, empty.Contains(TimeRange{Start: 0, End: 15}))
	assert.False(t, empty.Contains(TimeRange{Start: 540, End: 555}))
}
