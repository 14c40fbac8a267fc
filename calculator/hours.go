package calculator

import "github.com/amay077/backlog-summary/clock"

// breakHours derives the break deduction from a normalized work window.
// The codes are computed on the normalized times, not the raw ones; the
// spreadsheet classifies twice on purpose.
//
// Spreadsheet: 休憩時間 = INT((Y9+Z9+AA9)/2)*0.5
func breakHours(start, end clock.Minutes) float64 {
	codes := morningBreakCode(start) + afternoonBreakCode(end) + deepNightBreakCode(end)
	return float64(codes/2) * 0.5
}

// BreakTime returns the break deduction in hours for a raw start/end pair.
// An empty time contributes no break code.
func BreakTime(start, end string) (float64, error) {
	var morning, afternoon, deepNight int

	if start != "" {
		s, err := clock.Parse(start)
		if err != nil {
			return 0, err
		}
		morning = morningBreakCode(workStart(s))
	}

	if end != "" {
		e, err := clock.Parse(end)
		if err != nil {
			return 0, err
		}
		we := workEnd(e)
		afternoon = afternoonBreakCode(we)
		deepNight = deepNightBreakCode(we)
	}

	return float64((morning+afternoon+deepNight)/2) * 0.5, nil
}

// WorkingHours computes the working time between a raw start and end time:
// the normalized window length minus the break deduction. Either input
// being empty means no work that day and yields 0. The result is not yet
// rounded to half hours; that happens during allocation.
func WorkingHours(start, end string) (float64, error) {
	if start == "" || end == "" {
		return 0, nil
	}

	s, err := clock.Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := clock.Parse(end)
	if err != nil {
		return 0, err
	}

	ws := workStart(s)
	we := workEnd(e)
	labor := (we - ws).Hours()

	return labor - breakHours(ws, we), nil
}
