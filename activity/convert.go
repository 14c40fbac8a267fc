package activity

import (
	"fmt"

	"github.com/amay077/backlog-summary/client/backlog"
)

// Backlog activity type codes. Other codes (milestone edits, member
// changes, ...) carry no work signal and are dropped.
const (
	typeIssueCreated  = 1
	typeIssueUpdated  = 2
	typeIssueComment  = 3
	typeWikiCreated   = 5
	typeWikiUpdated   = 6
	typeGitPush       = 12
	typeRepoCreated   = 13
	typeBulkIssueEdit = 14
)

// FromBacklog flattens raw Backlog activities into report records.
// Bulk issue edits (type 14) are expanded into one comment activity per
// linked issue before mapping; unsupported types are skipped.
func FromBacklog(raw []backlog.Activity) []Activity {
	activities := make([]Activity, 0, len(raw))
	for _, r := range expandBulkEdits(raw) {
		if a, ok := convert(r); ok {
			activities = append(activities, a)
		}
	}
	return activities
}

func expandBulkEdits(raw []backlog.Activity) []backlog.Activity {
	expanded := make([]backlog.Activity, 0, len(raw))
	for _, r := range raw {
		if r.Type != typeBulkIssueEdit || len(r.Content.Link) == 0 {
			expanded = append(expanded, r)
			continue
		}

		for _, link := range r.Content.Link {
			single := r
			single.Type = typeIssueComment
			single.Content = backlog.ActivityContent{
				KeyID:   link.KeyID,
				Summary: link.Title,
				Comment: link.Comment,
			}
			expanded = append(expanded, single)
		}
	}
	return expanded
}

func convert(r backlog.Activity) (Activity, bool) {
	a := Activity{
		Timestamp:   r.Created.Local(),
		ProjectKey:  r.Project.ProjectKey,
		ProjectName: r.Project.Name,
	}

	switch r.Type {
	case typeIssueCreated:
		a.Type = "課題を追加"
		a.Title = r.Content.Summary
	case typeIssueUpdated:
		a.Type = "課題を更新"
		a.Title = r.Content.Summary
	case typeIssueComment:
		a.Type = "課題にコメント"
		a.Title = r.Content.Summary
	case typeWikiCreated:
		a.Type = "Wiki を追加"
		a.Title = r.Content.Name
	case typeWikiUpdated:
		a.Type = "Wiki を更新"
		a.Title = r.Content.Name
	case typeGitPush:
		a.Type = "PUSH"
		var firstComment string
		if len(r.Content.Revisions) > 0 {
			firstComment = r.Content.Revisions[0].Comment
		}
		a.Title = fmt.Sprintf("%s (%d件) %s", r.Content.Repository.Name, len(r.Content.Revisions), firstComment)
	case typeRepoCreated:
		a.Type = "リポジトリ作成"
		a.Title = r.Content.Repository.Name
	default:
		return Activity{}, false
	}

	return a, true
}
