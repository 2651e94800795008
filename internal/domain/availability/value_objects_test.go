//go:build unit

package availability_test

import (
	"strings"
	"testing"

	"healthsched/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("round trips ISO dates", func(t *testing.T) {
		d, err := availability.ParseDate("2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-02", d.String())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"06/02/2025", "2025-6-2", "2025-06-02T00:00:00Z", ""} {
			_, err := availability.ParseDate(s)
			assert.ErrorIs(t, err, availability.ErrInvalidDate, s)
		}
	})
}

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"mid month keeps the day", "2025-06-02", 1, "2025-07-02"},
		{"month end clamps to shorter month", "2025-01-31", 1, "2025-02-28"},
		{"leap february keeps the 29th", "2024-01-31", 1, "2024-02-29"},
		{"clamped again when the next month is short", "2025-03-31", 1, "2025-04-30"},
		{"crosses a year boundary", "2025-11-30", 3, "2026-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustDate(t, tt.start).AddMonths(tt.months)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		hour    int
		minute  int
	}{
		{in: "09:00", hour: 9, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: "00:00", hour: 0, minute: 0},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tod, err := availability.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, availability.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, tod.Hour())
			assert.Equal(t, tt.minute, tod.Minute())
		})
	}
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("end must be after start", func(t *testing.T) {
		start := mustTimeOfDay(t, "10:00")
		for _, end := range []string{"09:00", "10:00"} {
			_, err := availability.NewTimeWindow(start, mustTimeOfDay(t, end))
			assert.ErrorIs(t, err, availability.ErrEndNotAfterStart, end)
		}
	})

	t.Run("minutes spans the window", func(t *testing.T) {
		w := mustWindow(t, "09:00", "17:30")
		assert.Equal(t, 510, w.Minutes())
	})
}

func TestSlotDurationDivides(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		minutes int
		want    bool
	}{
		{name: "thirty into an hour", start: "09:00", end: "10:00", minutes: 30, want: true},
		{name: "forty five into an hour", start: "09:00", end: "10:00", minutes: 45, want: false},
		{name: "full window as one slot", start: "09:00", end: "10:00", minutes: 60, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustSlotDuration(t, tt.minutes)
			assert.Equal(t, tt.want, d.Divides(mustWindow(t, tt.start, tt.end)))
		})
	}

	t.Run("zero or negative durations are rejected", func(t *testing.T) {
		for _, m := range []int{0, -15, 4, 181} {
			_, err := availability.NewSlotDuration(m)
			assert.ErrorIs(t, err, availability.ErrSlotDurationOutOfRange)
		}
	})
}

func TestNewNotes(t *testing.T) {
	t.Run("caps length at 500", func(t *testing.T) {
		_, err := availability.NewNotes(strings.Repeat("x", 501))
		assert.ErrorIs(t, err, availability.ErrNotesTooLong)

		n, err := availability.NewNotes(strings.Repeat("x", 500))
		require.NoError(t, err)
		assert.False(t, n.IsEmpty())
	})
}

func TestNewAppointmentType(t *testing.T) {
	t.Run("empty defaults to consultation", func(t *testing.T) {
		at, err := availability.NewAppointmentType("")
		require.NoError(t, err)
		assert.Equal(t, availability.TypeConsultation, at)
	})

	t.Run("unknown values are rejected", func(t *testing.T) {
		_, err := availability.NewAppointmentType("house-call")
		assert.ErrorIs(t, err, availability.ErrInvalidAppointmentType)
	})
}
