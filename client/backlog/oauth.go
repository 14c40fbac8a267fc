package backlog

import (
	"context"

	"golang.org/x/oauth2"
)

// UseOAuth switches the client from API-key auth to bearer tokens, using a
// token previously issued for the space. The token source refreshes it as
// needed for the lifetime of ctx.
func (c *Client) UseOAuth(ctx context.Context, clientID, clientSecret string, token *oauth2.Token) {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.baseURL() + "/OAuth2AccessRequest.action",
			TokenURL: c.baseURL() + "/api/v2/oauth2/token",
		},
	}

	c.tokenSource = conf.TokenSource(ctx, token)
}
