package calculator

import "github.com/amay077/backlog-summary/clock"

// The work window snaps the observed first/last activity times onto the
// policy boundaries the break codes are defined against, so that the hour
// arithmetic in hours.go only ever sees a small set of clock values.

// Spreadsheet: D9 =IF(Y9=5,"8:00",IF(Y9=1,"12:45",ROUNDUP(E9/"0:15",0)*"0:15"))
func workStart(start clock.Minutes) clock.Minutes {
	switch morningBreakCode(start) {
	case 5:
		return clock.Of(8, 0)
	case 1:
		return clock.Of(12, 45)
	}
	return start.CeilQuarter()
}

// Spreadsheet: E9 =IF(AA9=5,"28:00",IF(AA9=3,"26:00",IF(AA9=1,"24:00",
// IF(Z9=3,"22:00",(IF(Z9=1,"19:30",IF(AND("11:45"-F9<=0,"12:45"-F9>=0),
// "12:45",INT(F9/"0:15")*"0:15")))))))
func workEnd(end clock.Minutes) clock.Minutes {
	switch deepNightBreakCode(end) {
	case 5:
		return clock.Of(28, 0)
	case 3:
		return clock.Of(26, 0)
	case 1:
		return clock.Of(24, 0)
	}

	switch afternoonBreakCode(end) {
	case 3:
		return clock.Of(22, 0)
	case 1:
		return clock.Of(19, 30)
	}

	// An end inside the lunch window counts as working until 12:45.
	if end >= clock.Of(11, 45) && end <= clock.Of(12, 45) {
		return clock.Of(12, 45)
	}

	return end.FloorQuarter()
}

// WorkStart normalizes a raw start time to the effective clock-in time.
// Empty in, empty out.
func WorkStart(start string) (string, error) {
	if start == "" {
		return "", nil
	}
	m, err := clock.Parse(start)
	if err != nil {
		return "", err
	}
	return workStart(m).String(), nil
}

// WorkEnd normalizes a raw end time to the effective clock-out time.
func WorkEnd(end string) (string, error) {
	if end == "" {
		return "", nil
	}
	m, err := clock.Parse(end)
	if err != nil {
		return "", err
	}
	return workEnd(m).String(), nil
}
