package calculator

import (
	"testing"

	"github.com/amay077/backlog-summary/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorningBreakCode(t *testing.T) {
	tests := []struct {
		start string
		want  int
	}{
		{"", 0},
		{"6:59", 8},
		{"7:00", 5},
		{"7:59", 5},
		{"8:00", 4},
		{"11:44", 4},
		{"11:45", 1},
		{"12:44", 1},
		{"12:45", 0},
		{"13:00", 0},
	}

	for _, test := range tests {
		t.Run(test.start, func(t *testing.T) {
			got, err := MorningBreakCode(test.start)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestAfternoonBreakCode(t *testing.T) {
	tests := []struct {
		end  string
		want int
	}{
		{"", 0},
		{"18:00", 0},
		{"19:30", 0},
		{"19:31", 1},
		{"20:14", 1},
		{"20:15", 2},
		{"22:00", 2},
		{"22:01", 3},
		{"22:44", 3},
		{"22:45", 4},
		{"26:00", 4},
	}

	for _, test := range tests {
		t.Run(test.end, func(t *testing.T) {
			got, err := AfternoonBreakCode(test.end)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDeepNightBreakCode(t *testing.T) {
	tests := []struct {
		end  string
		want int
	}{
		{"", 0},
		{"23:59", 0},
		{"24:00", 0},
		{"24:01", 1},
		{"24:44", 1},
		{"24:45", 2},
		{"26:00", 2},
		{"26:01", 3},
		{"26:44", 3},
		{"26:45", 4},
		{"28:00", 4},
		{"28:01", 5},
		{"28:44", 5},
		{"28:45", 6},
	}

	for _, test := range tests {
		t.Run(test.end, func(t *testing.T) {
			got, err := DeepNightBreakCode(test.end)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestBreakCode_InvalidTime(t *testing.T) {
	_, err := MorningBreakCode("nope")
	assert.ErrorIs(t, err, clock.ErrInvalidTime)

	_, err = AfternoonBreakCode("25")
	assert.ErrorIs(t, err, clock.ErrInvalidTime)

	_, err = DeepNightBreakCode("26:99")
	assert.ErrorIs(t, err, clock.ErrInvalidTime)
}
