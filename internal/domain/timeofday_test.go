package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:00", want: 540},
		{name: "with minutes", input: "10:15", want: 615},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "hour overflow", input: "24:00", wantErr: true},
		{name: "garbage", input: "9am", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_Parts(t *testing.T) {
	tod, err := NewTimeOfDay(14, 30)
	require.NoError(t, err)

	assert.Equal(t, 14, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.False(t, tod.IsMajor())
	assert.True(t, tod.IsHalfHour())
	assert.Equal(t, "14:30", tod.String())
	assert.Equal(t, "24:00", EndOfDay.String())

	_, err = NewTimeOfDay(12, 60)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	got, err := TimeOfDay(600).AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(645), got)

	_, err = TimeOfDay(1430).AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = TimeOfDay(5).AddMinutes(-10)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestTimeOfDayFromTime(t *testing.T) {
	ts := time.Date(2026, 3, 14, 16, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeOfDay(16*60+45), TimeOfDayFromTime(ts))
}
