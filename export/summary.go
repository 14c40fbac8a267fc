package export

import (
	"fmt"
	"strconv"

	"github.com/amay077/backlog-summary/summary"
)

// SummaryPath is where WriteSummary will put the month's summary report.
func (w *Writer) SummaryPath(month summary.Month) string {
	return w.path(fmt.Sprintf("%s-report-summary.csv", month))
}

// WriteSummary writes one row per calendar day. Project columns are sorted
// lexicographically and identical on every row: first one hours column per
// project, then count/min/max stat columns per project.
func (w *Writer) WriteSummary(month summary.Month, days []summary.DaySummary) (string, error) {
	keys := summary.ProjectKeys(days)

	header := []string{"日付", "開始時刻", "終了時刻", "稼動時間"}
	header = append(header, keys...)
	for _, key := range keys {
		header = append(header,
			key+"_件数",
			key+"_最小日時",
			key+"_最大日時",
		)
	}

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		row := []string{
			day.Date,
			day.StartTime,
			day.EndTime,
			formatHours(day.WorkingHours),
		}

		for _, key := range keys {
			row = append(row, formatHours(day.ProjectHours[key]))
		}

		for _, key := range keys {
			stat := day.ProjectStats[key]
			min, max := "", ""
			if stat.Count > 0 {
				min = stat.Min.Format(detailTimestampFormat)
				max = stat.Max.Format(detailTimestampFormat)
			}
			row = append(row, strconv.Itoa(stat.Count), min, max)
		}

		rows = append(rows, row)
	}

	path := w.SummaryPath(month)
	err := w.writeCSV(path, header, rows)
	if err != nil {
		return "", fmt.Errorf("w.writeCSV(%s): %w", path, err)
	}

	return path, nil
}
