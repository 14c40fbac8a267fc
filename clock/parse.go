package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned for clock strings that are not "H:mm" or
// "HH:mm". Errors returned by Parse wrap it.
var ErrInvalidTime = errors.New("invalid clock time")

// Parse parses a clock string such as "9:00", "18:30" or "26:00". Hours of
// 24 and above are accepted (extended notation for work past midnight).
func Parse(s string) (Minutes, error) {
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return Of(hour, minute), nil
}
