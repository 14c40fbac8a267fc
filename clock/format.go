package clock

import (
	"fmt"
	"time"
)

// String renders the clock time as "H:mm". The hour is not zero-padded and
// is left as-is above 24, matching the extended notation used in the
// summary report ("8:00", "13:00", "26:00").
func (m Minutes) String() string {
	return fmt.Sprintf("%d:%02d", m.Hour(), m.Minute())
}

// RoundHalfHour rounds a timestamp to the nearest 30 minutes:
// minutes 0-14 snap to :00, 15-44 to :30, and 45-59 to :00 of the next
// hour. Seconds are dropped.
func RoundHalfHour(t time.Time) time.Time {
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())

	switch m := t.Minute(); {
	case m < 15:
		return base
	case m < 45:
		return base.Add(30 * time.Minute)
	default:
		return base.Add(time.Hour)
	}
}

// Extended renders a timestamp relative to a business day, using the >24h
// notation when the timestamp has crossed into the next calendar day but is
// still before the 06:00 day boundary. businessDay is the day's midnight in
// the same location as t.
func Extended(businessDay, t time.Time) string {
	hour := t.Hour()
	if t.After(businessDay) && !sameDate(businessDay, t) && hour < 6 {
		hour += 24
	}
	return fmt.Sprintf("%d:%02d", hour, t.Minute())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
