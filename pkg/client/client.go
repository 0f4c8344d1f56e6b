package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the activity endpoint of the public Bored API.
const DefaultBaseURL = "http://bored.api.lewagon.com/api/activity/"

// DefaultRandomWorkers bounds concurrent requests made by Random.
const DefaultRandomWorkers = 4

// Client is a Bored API client.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	randomWorkers int
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom activity endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRandomWorkers sets how many requests Random keeps in flight.
func WithRandomWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.randomWorkers = n
		}
	}
}

// New creates a new Bored API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:       DefaultBaseURL,
		httpClient:    http.DefaultClient,
		randomWorkers: DefaultRandomWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the activity endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Build builds the query URL for mode against the client's endpoint.
func (c *Client) Build(mode Mode, key string, params []ParameterSpec) (string, error) {
	return Build(c.baseURL, mode, key, params)
}

// Query builds the URL for mode and executes it. A validation failure
// returns before any request is made.
func (c *Client) Query(ctx context.Context, mode Mode, key string, params []ParameterSpec) (*Result, error) {
	u, err := c.Build(mode, key, params)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, u)
}

// Random fetches n random activities with at most the configured number of
// requests in flight. Results keep call order; the first failure cancels the
// rest.
func (c *Client) Random(ctx context.Context, n int) ([]*Result, error) {
	if n <= 0 {
		return nil, &ValidationError{Message: "count must be positive"}
	}
	results := make([]*Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.randomWorkers)
	for i := range n {
		g.Go(func() error {
			res, err := c.Execute(ctx, c.baseURL)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Execute performs a single GET against rawURL and interprets the body.
func (c *Client) Execute(ctx context.Context, rawURL string) (*Result, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("HTTP request returned error status",
			slog.String("url", rawURL),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, &TransportError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("reading response: %w", err)}
	}

	res, err := decodeResult(rawURL, body)
	if err != nil {
		return nil, err
	}
	res.StatusCode = resp.StatusCode

	slog.Debug("HTTP request completed",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("fields", len(res.Pairs)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return res, nil
}
