package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Minutes
	}{
		{"0:00", 0},
		{"9:00", 540},
		{"09:05", 545},
		{"19:30", 1170},
		{"24:00", 1440},
		{"26:00", 1560},
		{"28:44", 1724},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := Parse(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "9:60", "9:-1", "-1:00", "a:bc", "9:00:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "8:00", Of(8, 0).String())
	assert.Equal(t, "9:05", Of(9, 5).String())
	assert.Equal(t, "13:00", Of(13, 0).String())
	assert.Equal(t, "26:00", Of(26, 0).String())
}

func TestQuarterRounding(t *testing.T) {
	assert.Equal(t, Of(7, 0), Of(6, 50).CeilQuarter())
	assert.Equal(t, Of(9, 0), Of(9, 0).CeilQuarter())
	assert.Equal(t, Of(9, 15), Of(9, 1).CeilQuarter())

	assert.Equal(t, Of(6, 45), Of(6, 59).FloorQuarter())
	assert.Equal(t, Of(9, 0), Of(9, 0).FloorQuarter())
	assert.Equal(t, Of(18, 30), Of(18, 44).FloorQuarter())
}

func TestRoundHalfHour(t *testing.T) {
	base := func(hour, min int) time.Time {
		return time.Date(2023, 10, 2, hour, min, 31, 0, time.Local)
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"down to :00", base(10, 14), time.Date(2023, 10, 2, 10, 0, 0, 0, time.Local)},
		{"up to :30", base(10, 15), time.Date(2023, 10, 2, 10, 30, 0, 0, time.Local)},
		{"down to :30", base(10, 44), time.Date(2023, 10, 2, 10, 30, 0, 0, time.Local)},
		{"up to next hour", base(10, 45), time.Date(2023, 10, 2, 11, 0, 0, 0, time.Local)},
		{"across midnight", base(23, 50), time.Date(2023, 10, 3, 0, 0, 0, 0, time.Local)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, RoundHalfHour(test.in))
		})
	}
}

func TestExtended(t *testing.T) {
	businessDay := time.Date(2023, 10, 28, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day morning", time.Date(2023, 10, 28, 9, 30, 0, 0, time.Local), "9:30"},
		{"same day evening", time.Date(2023, 10, 28, 23, 0, 0, 0, time.Local), "23:00"},
		{"past midnight", time.Date(2023, 10, 29, 2, 0, 0, 0, time.Local), "26:00"},
		{"next day midnight", time.Date(2023, 10, 29, 0, 0, 0, 0, time.Local), "24:00"},
		{"next day after boundary", time.Date(2023, 10, 29, 6, 0, 0, 0, time.Local), "6:00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Extended(businessDay, test.t))
		})
	}
}
