// Package summary holds the output records of a monthly report: one
// DaySummary per calendar day of the target month.
package summary

import (
	"sort"
	"time"
)

// DaySummary is the computed work record for a single business day.
// ProjectHours and ProjectStats carry an entry for every project seen
// anywhere in the month, so that report columns stay identical across days.
type DaySummary struct {
	// Date is the business day, formatted YYYY-MM-DD.
	Date string
	// StartTime and EndTime are clock strings; both empty on days without
	// activity. EndTime may use the >24h notation ("26:00").
	StartTime string
	EndTime   string
	// WorkingHours is the day total after break deduction.
	WorkingHours float64
	// ProjectHours is WorkingHours split across the day's projects.
	ProjectHours map[string]float64
	ProjectStats map[string]ProjectStat
}

// ProjectStat counts one project's activities on one business day.
// Min and Max are zero when Count is 0.
type ProjectStat struct {
	Count int
	Min   time.Time
	Max   time.Time
}

// ProjectKeys returns every project key appearing in the summaries, sorted
// lexicographically for stable report columns.
func ProjectKeys(days []DaySummary) []string {
	seen := map[string]bool{}
	for _, day := range days {
		for key := range day.ProjectStats {
			seen[key] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
