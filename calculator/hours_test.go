package calculator

import (
	"testing"

	"github.com/amay077/backlog-summary/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakTime(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"both empty", "", "", 0},
		{"standard day has a one hour lunch", "9:00", "18:00", 1},
		{"early start late end", "7:30", "22:30", 1.5},
		{"afternoon only", "13:00", "17:00", 0},
		{"deep night", "9:00", "26:10", 2.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := BreakTime(test.start, test.end)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestWorkingHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"standard eight hour day", "9:00", "18:00", 8},
		{"empty start", "", "18:00", 0},
		{"empty end", "9:00", "", 0},
		{"half day from 13:00", "13:00", "18:00", 5},
		{"overtime past midnight", "9:00", "26:00", 14.5},
		{"long day with extra breaks", "7:30", "22:30", 12.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := WorkingHours(test.start, test.end)
			require.NoError(t, err)
			assert.InDelta(t, test.want, got, 1e-9)
		})
	}
}

func TestWorkingHours_InvalidTime(t *testing.T) {
	_, err := WorkingHours("9am", "18:00")
	assert.ErrorIs(t, err, clock.ErrInvalidTime)

	_, err = WorkingHours("9:00", "6pm")
	assert.ErrorIs(t, err, clock.ErrInvalidTime)
}
