package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBody limits the response body size to read. Catalog responses
// are the largest payloads and stay well under this; anything bigger is a
// misbehaving server.
const maxResponseBody = 10 * 1024 * 1024 // 10MB

// Client issues requests to the internship backend.
//
// Design decision: We hold a single *http.Client rather than creating one
// per call because connection pooling works better with a shared client and
// tests can inject a custom transport.
type Client struct {
	// baseURL is the backend API base path without a trailing slash.
	baseURL string

	// httpClient performs the actual requests.
	httpClient *http.Client

	// token is the bearer credential attached to requests when non-empty.
	token string

	// userAgent is the User-Agent header sent with every request.
	userAgent string

	// logger receives debug records for each request/response pair.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to requests.
// An empty token leaves requests unauthenticated.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Used by tests to inject a transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "internhunt",
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the bearer token. Auth commands call this after the
// backend issues a fresh token so follow-up requests in the same invocation
// are authenticated.
func (c *Client) SetToken(token string) {
	c.token = token
}

// responder is implemented by response envelopes so do() can apply the
// shared success/failure handling.
type responder interface {
	ok() bool
	failureMessage() string
}

// envelope is the common part of every backend response.
// The backend prefers "details" for human-readable messages and falls back
// to "error".
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}

func (e *envelope) ok() bool {
	return e.Success
}

func (e *envelope) failureMessage() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Error
}

// do issues a request and decodes the response into out.
//
// Outcome mapping:
//   - HTTP 401 → ErrUnauthorized, wrapped with the server message when one
//     was decodable
//   - decodable success:false → *APIError with the verbatim message
//   - network error, undecodable body, or other non-OK status → wrapped
//     transport error
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("network error: failed to read response: %w", err)
	}

	c.logger.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	// Authentication rejection is handled identically everywhere: the
	// caller clears the session and reverts to logged-out behavior.
	if resp.StatusCode == http.StatusUnauthorized {
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.failureMessage() != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, env.failureMessage())
		}
		return ErrUnauthorized
	}

	decodeErr := json.Unmarshal(data, out)

	// Application-level failure: the body decoded and reports success:false.
	if decodeErr == nil {
		if r, isResponder := out.(responder); isResponder && !r.ok() {
			return &APIError{Message: r.failureMessage(), Status: resp.StatusCode}
		}
	}

	// Remaining non-OK statuses without a decodable failure body are
	// transport-tier problems.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return fmt.Errorf("network error: malformed response: %w", decodeErr)
	}

	return nil
}
