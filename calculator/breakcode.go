package calculator

import "github.com/amay077/backlog-summary/clock"

// The break codes were transcribed from the attendance spreadsheet. Each
// classifier is an ordered threshold table, checked top-down from the most
// extreme time inward; the first match wins. The codes of a day's start and
// end times add up to a break deduction in hours.go.

type breakStep struct {
	threshold clock.Minutes
	code      int
}

// Spreadsheet: Y9 =IF(E9=0,0,IF("7:00"-E9>0,8,IF("8:00"-E9>0,5,
// IF("11:45"-E9>0,4,IF("12:45"-E9>0,1,0)))))
var morningSteps = []breakStep{
	{clock.Of(7, 0), 8},
	{clock.Of(8, 0), 5},
	{clock.Of(11, 45), 4},
	{clock.Of(12, 45), 1},
}

// Spreadsheet: Z9 =IF(F9-"22:44">0,4,IF(F9-"22:00">0,3,
// IF(F9-"20:14">0,2,IF(F9-"19:30">0,1,0))))
var afternoonSteps = []breakStep{
	{clock.Of(22, 44), 4},
	{clock.Of(22, 0), 3},
	{clock.Of(20, 14), 2},
	{clock.Of(19, 30), 1},
}

// Spreadsheet: AA9 =IF(F9-"28:44">0,6,IF(F9-"28:00">0,5,IF(F9-"26:44">0,4,
// IF(F9-"26:00">0,3,IF(F9-"24:44">0,2,IF(F9-"24:00">0,1,0))))))
// Thresholds use the >24h notation; 28:44 is 04:44 the next day.
var deepNightSteps = []breakStep{
	{clock.Of(28, 44), 6},
	{clock.Of(28, 0), 5},
	{clock.Of(26, 44), 4},
	{clock.Of(26, 0), 3},
	{clock.Of(24, 44), 2},
	{clock.Of(24, 0), 1},
}

// morningBreakCode classifies a day's start time. Earlier starts imply more
// accumulated break.
func morningBreakCode(start clock.Minutes) int {
	for _, step := range morningSteps {
		if start < step.threshold {
			return step.code
		}
	}
	return 0
}

// afternoonBreakCode classifies an evening end time.
func afternoonBreakCode(end clock.Minutes) int {
	for _, step := range afternoonSteps {
		if end > step.threshold {
			return step.code
		}
	}
	return 0
}

// deepNightBreakCode classifies an end time past midnight.
func deepNightBreakCode(end clock.Minutes) int {
	for _, step := range deepNightSteps {
		if end > step.threshold {
			return step.code
		}
	}
	return 0
}

// MorningBreakCode is the string-level form of morningBreakCode. An empty
// time means "no start recorded" and yields code 0.
func MorningBreakCode(start string) (int, error) {
	if start == "" {
		return 0, nil
	}
	m, err := clock.Parse(start)
	if err != nil {
		return 0, err
	}
	return morningBreakCode(m), nil
}

// AfternoonBreakCode is the string-level form of afternoonBreakCode.
func AfternoonBreakCode(end string) (int, error) {
	if end == "" {
		return 0, nil
	}
	m, err := clock.Parse(end)
	if err != nil {
		return 0, err
	}
	return afternoonBreakCode(m), nil
}

// DeepNightBreakCode is the string-level form of deepNightBreakCode.
func DeepNightBreakCode(end string) (int, error) {
	if end == "" {
		return 0, nil
	}
	m, err := clock.Parse(end)
	if err != nil {
		return 0, err
	}
	return deepNightBreakCode(m), nil
}
