package activity

import (
	"testing"
	"time"

	"github.com/amay077/backlog-summary/client/backlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawActivity(typ int) backlog.Activity {
	return backlog.Activity{
		ID:   1,
		Type: typ,
		Project: backlog.Project{
			ID:         10,
			ProjectKey: "AAA",
			Name:       "AAA project",
		},
		Created: time.Date(2023, 10, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestFromBacklog_TypeMapping(t *testing.T) {
	tests := []struct {
		name      string
		raw       backlog.Activity
		wantType  string
		wantTitle string
	}{
		{
			name: "issue created",
			raw: func() backlog.Activity {
				r := rawActivity(1)
				r.Content.Summary = "implement login"
				return r
			}(),
			wantType:  "課題を追加",
			wantTitle: "implement login",
		},
		{
			name: "issue updated",
			raw: func() backlog.Activity {
				r := rawActivity(2)
				r.Content.Summary = "fix crash"
				return r
			}(),
			wantType:  "課題を更新",
			wantTitle: "fix crash",
		},
		{
			name: "issue comment",
			raw: func() backlog.Activity {
				r := rawActivity(3)
				r.Content.Summary = "fix crash"
				return r
			}(),
			wantType:  "課題にコメント",
			wantTitle: "fix crash",
		},
		{
			name: "wiki created",
			raw: func() backlog.Activity {
				r := rawActivity(5)
				r.Content.Name = "setup guide"
				return r
			}(),
			wantType:  "Wiki を追加",
			wantTitle: "setup guide",
		},
		{
			name: "git push",
			raw: func() backlog.Activity {
				r := rawActivity(12)
				r.Content.Repository = backlog.Repository{Name: "api-server"}
				r.Content.Revisions = []backlog.Revision{
					{Rev: "abc123", Comment: "add endpoint"},
					{Rev: "def456", Comment: "fix test"},
				}
				return r
			}(),
			wantType:  "PUSH",
			wantTitle: "api-server (2件) add endpoint",
		},
		{
			name: "repository created",
			raw: func() backlog.Activity {
				r := rawActivity(13)
				r.Content.Repository = backlog.Repository{Name: "api-server"}
				return r
			}(),
			wantType:  "リポジトリ作成",
			wantTitle: "api-server",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FromBacklog([]backlog.Activity{test.raw})
			require.Len(t, got, 1)
			assert.Equal(t, test.wantType, got[0].Type)
			assert.Equal(t, test.wantTitle, got[0].Title)
			assert.Equal(t, "AAA", got[0].ProjectKey)
			assert.Equal(t, "AAA project", got[0].ProjectName)
			assert.True(t, got[0].Timestamp.Equal(test.raw.Created))
		})
	}
}

func TestFromBacklog_DropsUnknownTypes(t *testing.T) {
	got := FromBacklog([]backlog.Activity{rawActivity(4), rawActivity(17)})
	assert.Empty(t, got)
}

func TestFromBacklog_ExpandsBulkEdits(t *testing.T) {
	r := rawActivity(14)
	r.Content.Link = []backlog.Link{
		{KeyID: 101, Title: "first issue", Comment: backlog.Comment{ID: 1, Content: "done"}},
		{KeyID: 102, Title: "second issue", Comment: backlog.Comment{ID: 2, Content: "done"}},
	}

	got := FromBacklog([]backlog.Activity{r})

	require.Len(t, got, 2)
	assert.Equal(t, "課題にコメント", got[0].Type)
	assert.Equal(t, "first issue", got[0].Title)
	assert.Equal(t, "課題にコメント", got[1].Type)
	assert.Equal(t, "second issue", got[1].Title)
}

func TestFromBacklog_BulkEditWithoutLinksPassesThrough(t *testing.T) {
	got := FromBacklog([]backlog.Activity{rawActivity(14)})
	assert.Empty(t, got)
}
