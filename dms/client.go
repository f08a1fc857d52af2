package dms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is a rate-limited, retrying client of the data modeling service.
type Client struct {
	config      *Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	tokens      TokenSource
	logger      *slog.Logger
	stats       *RequestStats

	// Instances is the instance endpoint group.
	Instances *InstancesService
	// GraphQL posts queries to data model GraphQL endpoints.
	GraphQL *GraphQLService
}

// NewClient creates a client from DefaultConfig and the given options.
func NewClient(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 5
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SlowHook == nil {
		cfg.SlowHook = logSlowRequest(logger)
	}
	c := &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		tokens:      cfg.tokenSource(),
		logger:      logger.With("component", "dms", "project", cfg.Project),
		stats:       &RequestStats{},
	}
	c.Instances = &InstancesService{client: c}
	c.GraphQL = &GraphQLService{client: c}
	return c, nil
}

// Config returns the client's config.
func (c *Client) Config() *Config {
	return c.config
}

// Stats returns the request statistics of the client.
func (c *Client) Stats() *RequestStats {
	return c.stats
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// projectURL returns the base URL of project-scoped endpoints.
func (c *Client) projectURL() string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/api/v1/projects/" + c.config.Project
}

// post sends body as JSON to the project-scoped path and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("dms: marshal %s body: %w", path, err)
	}
	resp, err := c.do(ctx, http.MethodPost, path, data)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("dms: decode %s response: %w", path, err)
	}
	return nil
}

// do executes a request with rate limiting and retry, returning the body
// of a successful response.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var lastErr error
	reauthed := false
	maxRetry := c.config.MaxRetries
	for attempt := 0; attempt <= maxRetry; attempt++ {
		if attempt > 0 {
			c.stats.Retries.Add(1)
		}
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("dms: rate limiter: %w", err)
		}
		start := time.Now()
		resp, err := c.doOnce(ctx, method, path, body)
		c.record(ctx, method, path, start, err)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if apiErr, ok := AsAPIError(err); ok && apiErr.IsUnauthorized() && !reauthed {
			if inv, ok := c.tokens.(invalidator); ok {
				reauthed = true
				inv.Invalidate()
				maxRetry++
				continue
			}
		}
		if !isRetryable(err) {
			return nil, err
		}

		backoff := time.Duration(1<<uint(attempt)) * 100 * time.Millisecond
		c.logger.DebugContext(ctx, "retrying request", "path", path, "attempt", attempt+1, "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("dms: max retries exceeded: %w", lastErr)
}

// doOnce executes a single request attempt.
func (c *Client) doOnce(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = c.projectURL() + "/" + strings.TrimPrefix(path, "/")
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("dms: create request: %w", err)
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("dms: token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.ClientName != "" {
		req.Header.Set("X-Client-Name", c.config.ClientName)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dms: http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dms: read body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, resp.Header, data)
	}
	return data, nil
}
