package calculator

import "time"

// dayBoundaryHour is where one business day ends and the next begins.
// Activity before 06:00 still belongs to the previous day's shift.
const dayBoundaryHour = 6

// BusinessDay returns the calendar date (YYYY-MM-DD) a timestamp is
// attributed to.
func BusinessDay(t time.Time) string {
	if t.Hour() < dayBoundaryHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format("2006-01-02")
}
