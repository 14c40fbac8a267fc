package calculator

import (
	"fmt"
	"sort"
	"time"

	"github.com/amay077/backlog-summary/activity"
	"github.com/amay077/backlog-summary/clock"
	"github.com/amay077/backlog-summary/summary"
)

// defaultStart and halfDayStart are the assumed clock-in times. The first
// activity of a day landing in the afternoon is read as a morning half-day
// off.
const (
	defaultStart = "9:00"
	halfDayStart = "13:00"

	// Rounded end times at or past this clock hour get one hour deducted
	// (the evening meal break never shows up in the activity stream).
	lateCutoff = 15
)

// Aggregate folds a month's activities into one DaySummary per calendar
// day. Activities may arrive in any order; days without activity produce an
// all-zero record so the report covers the entire month.
func Aggregate(activities []activity.Activity, month summary.Month) ([]summary.DaySummary, error) {
	byDay := make(map[string][]activity.Activity)
	for _, a := range activities {
		day := BusinessDay(a.Timestamp)
		byDay[day] = append(byDay[day], a)
	}

	// The project universe spans the whole month, so every day exposes the
	// same column set.
	keySet := make(map[string]bool)
	for _, a := range activities {
		keySet[a.ProjectKey] = true
	}
	allKeys := make([]string, 0, len(keySet))
	for key := range keySet {
		allKeys = append(allKeys, key)
	}
	sort.Strings(allKeys)

	days := make([]summary.DaySummary, 0, month.Days())
	for _, date := range month.Dates() {
		day, err := summarizeDay(date, byDay[date], allKeys)
		if err != nil {
			return nil, fmt.Errorf("summarizing %s: %w", date, err)
		}
		days = append(days, day)
	}

	return days, nil
}

func summarizeDay(date string, acts []activity.Activity, allKeys []string) (summary.DaySummary, error) {
	day := summary.DaySummary{
		Date:         date,
		ProjectStats: make(map[string]summary.ProjectStat, len(allKeys)),
	}
	for _, key := range allKeys {
		day.ProjectStats[key] = summary.ProjectStat{}
	}

	if len(acts) == 0 {
		day.ProjectHours = Allocate(0, nil, allKeys)
		return day, nil
	}

	minTs, maxTs := timestampRange(acts)
	day.StartTime = defaultStart
	if minTs.Hour() >= 13 {
		day.StartTime = halfDayStart
	}
	day.EndTime = endTime(date, maxTs)

	hours, err := WorkingHours(day.StartTime, day.EndTime)
	if err != nil {
		return summary.DaySummary{}, err
	}
	day.WorkingHours = hours

	counts := make(map[string]int, len(allKeys))
	for _, key := range allKeys {
		var keyActs []activity.Activity
		for _, a := range acts {
			if a.ProjectKey == key {
				keyActs = append(keyActs, a)
			}
		}
		counts[key] = len(keyActs)
		if len(keyActs) == 0 {
			continue
		}

		min, max := timestampRange(keyActs)
		day.ProjectStats[key] = summary.ProjectStat{
			Count: len(keyActs),
			Min:   min,
			Max:   max,
		}
	}

	day.ProjectHours = Allocate(day.WorkingHours, counts, allKeys)
	return day, nil
}

// endTime derives the day's clock-out time from its last activity: rounded
// to the nearest half hour, minus the late-cutoff deduction, rendered in
// the >24h notation when the day ran past midnight.
func endTime(date string, maxTs time.Time) string {
	rounded := clock.RoundHalfHour(maxTs)
	if clock.FromTime(rounded) >= clock.Of(lateCutoff, 0) {
		rounded = rounded.Add(-time.Hour)
	}

	midnight, _ := time.ParseInLocation("2006-01-02", date, maxTs.Location())
	return clock.Extended(midnight, rounded)
}

func timestampRange(acts []activity.Activity) (min, max time.Time) {
	min, max = acts[0].Timestamp, acts[0].Timestamp
	for _, a := range acts[1:] {
		if a.Timestamp.Before(min) {
			min = a.Timestamp
		}
		if a.Timestamp.After(max) {
			max = a.Timestamp
		}
	}
	return min, max
}
