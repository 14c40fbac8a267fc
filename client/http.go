package client

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/time/rate"
)

// HttpClient implements a client for sending HTTP requests, while automating
// some busywork such as closing response bodies, pacing requests against the
// remote API's rate limit, and retrying transient failures.
type HttpClient struct {
	Client  http.Client
	Limiter *rate.Limiter
}

// NewHttpClient returns a client paced to reqsPerSecond. Backlog allows 600
// requests per minute per user; the callers here stay well below that.
func NewHttpClient(timeout time.Duration, reqsPerSecond float64) *HttpClient {
	hc := &HttpClient{
		Client: http.Client{
			Timeout: timeout,
		},
		Limiter: rate.NewLimiter(rate.Limit(reqsPerSecond), 1),
	}
	return hc
}

type Resp struct {
	Code   int
	Body   []byte
	Header http.Header
}

// Do is a simplified version of http.Client.Do that reads the response body
// and returns it as a byte slice. Transport errors, 429 and 5xx responses
// are retried with exponential backoff; the request context bounds the
// whole attempt sequence.
func (hc *HttpClient) Do(req *http.Request) (*Resp, error) {
	var resp *Resp

	err := retry.Do(
		func() error {
			if err := hc.Limiter.Wait(req.Context()); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			hr, err := hc.Client.Do(req)
			if err != nil {
				return fmt.Errorf("client error: %w", err)
			}

			defer hr.Body.Close()
			body, err := io.ReadAll(hr.Body)
			if err != nil {
				return fmt.Errorf("reading response body: %w", err)
			}

			resp = &Resp{
				Code:   hr.StatusCode,
				Body:   body,
				Header: hr.Header,
			}

			if hr.StatusCode == http.StatusTooManyRequests || hr.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("resp %d: %s", hr.StatusCode, string(body))
			}
			return nil
		},
		retry.Context(req.Context()),
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		// A retried-out 429/5xx still produced a response worth returning.
		if resp != nil {
			return resp, nil
		}
		return nil, err
	}

	return resp, nil
}
