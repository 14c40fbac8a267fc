package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// activityPageSize is the maximum the activities endpoint allows per page.
const activityPageSize = 100

// Activity is a raw activity payload. Content is a union across activity
// types; only the fields a given type populates are meaningful.
type Activity struct {
	ID      int             `json:"id"`
	Project Project         `json:"project"`
	Type    int             `json:"type"`
	Content ActivityContent `json:"content"`
	Created time.Time       `json:"created"`
}

type Project struct {
	ID         int    `json:"id"`
	ProjectKey string `json:"projectKey"`
	Name       string `json:"name"`
}

type ActivityContent struct {
	ID          int        `json:"id"`
	KeyID       int        `json:"key_id"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Comment     Comment    `json:"comment"`
	Changes     []Change   `json:"changes"`
	Link        []Link     `json:"link"`
	Name        string     `json:"name"`
	Version     int        `json:"version"`
	Repository  Repository `json:"repository"`
	Revisions   []Revision `json:"revisions"`
}

type Comment struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

type Change struct {
	Field    string `json:"field"`
	NewValue string `json:"new_value"`
	OldValue string `json:"old_value"`
}

type Link struct {
	ID      int     `json:"id"`
	KeyID   int     `json:"key_id"`
	Title   string  `json:"title"`
	Comment Comment `json:"comment"`
}

type Repository struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Revision struct {
	Rev     string `json:"rev"`
	Comment string `json:"comment"`
}

// UserActivities pages backwards through a user's activity stream and
// returns the activities inside (from, to). The stream is ordered newest
// first, so paging stops once a page's oldest entry predates from.
func (c *Client) UserActivities(ctx context.Context, userID int, from, to time.Time) ([]Activity, error) {
	err := c.prep()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("users/%d/activities", userID)
	var activities []Activity
	maxID := 0

	for {
		params := map[string]string{
			"count": strconv.Itoa(activityPageSize),
		}
		if maxID > 0 {
			params["maxId"] = strconv.Itoa(maxID)
		}

		resp, err := c.GetRequest(ctx, endpoint, params)
		if err != nil {
			return nil, fmt.Errorf("c.GetRequest(%s): %w", endpoint, err)
		}
		if resp.Code != http.StatusOK {
			return nil, fmt.Errorf("error: resp %d - %s", resp.Code, string(resp.Body))
		}

		var page []Activity
		err = json.Unmarshal(resp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}

		if len(page) == 0 {
			break
		}

		for _, a := range page {
			if a.Created.After(from) && a.Created.Before(to) {
				activities = append(activities, a)
			}
		}

		last := page[len(page)-1]
		c.Logger.Debug("fetched activity page", "pageSize", len(page), "kept", len(activities), "oldest", last.Created)

		if last.Created.Before(from) {
			break
		}
		maxID = last.ID
	}

	return activities, nil
}
