// Package repo is the HTTP client for the upstream repository REST API.
// It is the data-fetch collaborator for browse and submission coordination:
// grouped browse entries, items under one entry value, object resolution,
// and submission configuration. Transient upstream failures are retried
// here; callers see only the final result.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// Sentinel errors for the repo package.
var (
	// ErrNotFound is returned when the upstream reports a missing object.
	ErrNotFound = errors.New("object not found")

	// ErrNoAdjacentPage is returned when an adjacent page is requested
	// past either end of a listing.
	ErrNoAdjacentPage = errors.New("no adjacent page")
)

const (
	defaultTimeout = 30 * time.Second

	// Transient failures (network errors, upstream 5xx) are retried this
	// many times before surfacing.
	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
)

// Client talks to the upstream repository REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token sent on every upstream request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a repository client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck verifies the upstream API is reachable and healthy.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// get performs a GET against the upstream and decodes the JSON response,
// retrying transient failures.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return retry.Do(
		func() error {
			return c.getOnce(ctx, u, result)
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying upstream request", "url", u, "attempt", n+1, "error", err)
		}),
	)
}

// transientError marks an error as retryable.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func (c *Client) getOnce(ctx context.Context, u string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transientError{fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transientError{fmt.Errorf("failed to read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return &transientError{fmt.Errorf("upstream error (status %d): %s", resp.StatusCode, string(body))}
	case resp.StatusCode >= 400:
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("upstream error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("upstream error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// errorResponse matches the upstream's error body format.
type errorResponse struct {
	Error string `json:"error"`
}
