package summary

import (
	"fmt"
	"time"
)

// Month identifies the reporting period.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" month identifier.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns midnight on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// End returns midnight on the first day of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return m.End().AddDate(0, 0, -1).Day()
}

// Dates returns every calendar date of the month as YYYY-MM-DD strings, in
// ascending order.
func (m Month) Dates() []string {
	dates := make([]string, 0, m.Days())
	for day := 1; day <= m.Days(); day++ {
		dates = append(dates, fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day))
	}
	return dates
}
