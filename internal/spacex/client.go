// Package spacex implements the query gateway to the SpaceX v4 API.
//
// The gateway translates logical requests ("launches in a date range",
// "masses for a payload id set") into the API's Mongo-style query protocol,
// following pagination until exhausted. Transport and timeouts belong to
// the injected HTTP client; remote failures are reported through the
// ErrRemoteUnavailable and ErrRemoteProtocol sentinels and never
// downgraded to empty results.
package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"launchdeck/internal/logger"
)

const (
	// DefaultBaseURL is the public SpaceX v4 API root.
	DefaultBaseURL = "https://api.spacexdata.com/v4"

	// DefaultPageSize is the page size requested from the query endpoints.
	DefaultPageSize = 100
)

var (
	// ErrRemoteUnavailable reports a transport-level failure reaching the API.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrRemoteProtocol reports a response that violates the documented contract.
	ErrRemoteProtocol = errors.New("remote protocol error")
)

// Doer executes a prepared HTTP request. The stock *http.Client satisfies
// it; tests substitute a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client speaks the v4 query protocol against a base URL.
type Client struct {
	http     Doer
	baseURL  string
	pageSize int
}

// Option customises a Client.
type Option func(*Client)

// WithHTTP sets the HTTP capability used to execute requests.
func WithHTTP(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithPageSize sets the page size requested per query call.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a gateway client. An empty baseURL selects the public API.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// postQuery issues one POST against a query endpoint and decodes the
// paginated envelope into out.
func (c *Client) postQuery(ctx context.Context, path string, body queryRequest, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	url := c.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemoteUnavailable, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %v", ErrRemoteUnavailable, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d: %s", ErrRemoteProtocol, path, resp.StatusCode, truncate(raw, 200))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemoteProtocol, path, err)
	}

	return nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
