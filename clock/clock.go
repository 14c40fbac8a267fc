// Package clock handles the "HH:mm" clock times used throughout the report
// calculations. Times are stored as minute counts since midnight of the
// business day, with no modulo: hours of 24 and above represent work past
// midnight (e.g. 26:00 is 02:00 on the following calendar day).
package clock

import (
	"time"
)

// Minutes is a clock time expressed as minutes since midnight of the
// business day it belongs to.
type Minutes int

// Hour returns the hour component, which may be 24 or greater.
func (m Minutes) Hour() int {
	return int(m) / 60
}

// Minute returns the minute component.
func (m Minutes) Minute() int {
	return int(m) % 60
}

// Hours returns the clock time as a decimal hour count.
func (m Minutes) Hours() float64 {
	return float64(m) / 60
}

func Of(hour, minute int) Minutes {
	return Minutes(hour*60 + minute)
}

// FromTime converts a timestamp's time-of-day component.
func FromTime(t time.Time) Minutes {
	return Of(t.Hour(), t.Minute())
}

// CeilQuarter rounds up to the nearest 15-minute mark.
func (m Minutes) CeilQuarter() Minutes {
	return (m + 14) / 15 * 15
}

// FloorQuarter rounds down to the nearest 15-minute mark.
func (m Minutes) FloorQuarter() Minutes {
	return m / 15 * 15
}
