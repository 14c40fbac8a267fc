package export

import (
	"fmt"

	"github.com/amay077/backlog-summary/activity"
	"github.com/amay077/backlog-summary/summary"
)

const detailTimestampFormat = "2006/01/02 15:04:05"

// DetailPath is where WriteDetail will put the month's detail report.
func (w *Writer) DetailPath(month summary.Month) string {
	return w.path(fmt.Sprintf("%s-report-detail.csv", month))
}

// WriteDetail writes one row per activity, in the order given.
func (w *Writer) WriteDetail(month summary.Month, activities []activity.Activity) (string, error) {
	header := []string{"日時", "プロジェクトキー", "プロジェクト名", "アクティビティ種類", "タイトル/概要"}

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			a.Timestamp.Format(detailTimestampFormat),
			a.ProjectKey,
			a.ProjectName,
			a.Type,
			a.Title,
		})
	}

	path := w.DetailPath(month)
	err := w.writeCSV(path, header, rows)
	if err != nil {
		return "", fmt.Errorf("w.writeCSV(%s): %w", path, err)
	}

	return path, nil
}
