// Package backlog implements the slice of the Backlog API v2 that the
// monthly report needs: resolving the authenticated user and paging through
// their activity stream.
package backlog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amay077/backlog-summary/client"
	"golang.org/x/oauth2"
)

type Client struct {
	// Configuration
	SpaceID string
	APIKey  string
	// Endpoint overrides the https://<space>.backlog.com base URL, mainly
	// for tests.
	Endpoint string
	Logger   *slog.Logger

	// State
	HttpClient  *client.HttpClient
	tokenSource oauth2.TokenSource
}

func (c *Client) Init() error {
	if c.SpaceID == "" && c.Endpoint == "" {
		return fmt.Errorf("no Backlog space configured")
	}

	c.HttpClient = client.NewHttpClient(10*time.Second, 2)

	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}

	return nil
}

func (c *Client) baseURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.backlog.com", c.SpaceID)
}

// prep needs to be run prior to making API calls, in order to verify that
// some form of credential is available. Whether the credential is accepted
// is only known once the API answers.
func (c *Client) prep() error {
	if c.APIKey == "" && c.tokenSource == nil {
		return fmt.Errorf("no credentials: set an API key or OAuth2 token")
	}
	return nil
}
