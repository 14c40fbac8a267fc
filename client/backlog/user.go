package backlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized signals rejected credentials, so callers can point the
// user at their API key instead of dumping a raw HTTP error.
var ErrUnauthorized = errors.New("backlog: authentication failed")

type User struct {
	ID     int    `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Myself resolves the user the configured credentials belong to.
func (c *Client) Myself(ctx context.Context) (User, error) {
	err := c.prep()
	if err != nil {
		return User{}, err
	}

	resp, err := c.GetRequest(ctx, "users/myself", nil)
	if err != nil {
		return User{}, fmt.Errorf("c.GetRequest(users/myself): %w", err)
	}

	if resp.Code == http.StatusUnauthorized {
		return User{}, ErrUnauthorized
	}
	if resp.Code != http.StatusOK {
		return User{}, fmt.Errorf("error: resp %d - %s", resp.Code, string(resp.Body))
	}

	var user User
	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return User{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return user, nil
}
