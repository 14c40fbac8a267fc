// Package activity defines the flat per-activity record produced from raw
// Backlog activity payloads. It is the input of the report calculator and
// the row type of the detail report.
package activity

import "time"

// Activity is one user action on Backlog, reduced to what the reports need.
type Activity struct {
	Timestamp   time.Time
	ProjectKey  string
	ProjectName string
	// Type is the human-readable activity kind ("課題を追加", "PUSH", ...).
	Type  string
	Title string
}
