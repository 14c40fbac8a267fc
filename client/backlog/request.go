package backlog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amay077/backlog-summary/client"
)

// GetRequest sends a GET to an api/v2 endpoint. API-key auth travels as a
// query parameter (the Backlog convention); OAuth tokens as a bearer
// header.
func (c *Client) GetRequest(ctx context.Context, endpoint string, params map[string]string) (*client.Resp, error) {
	endpointUrl := c.baseURL() + "/api/v2/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}

	q := url.Values{}
	for k, v := range params {
		q.Add(k, v)
	}

	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("tokenSource.Token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	} else {
		q.Add("apiKey", c.APIKey)
	}

	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return c.HttpClient.Do(req)
}
