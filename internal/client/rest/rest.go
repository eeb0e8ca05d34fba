// Package rest is the HTTP/JSON transport shared by the API client and the
// session. Every call issues at most one request; there is no retry and no
// caching at this layer.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// Request describes one call. Path is relative to the client's base URL and
// must already have its dynamic segments escaped (see Segment).
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
}

// Client sends JSON requests to a single backend.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBreaker makes the client fail fast with common.ErrUnavailable after
// failures consecutive transport failures, for cooldown. Responses from the
// backend, whatever their status, count as successes.
func WithBreaker(failures uint32, cooldown time.Duration) Option {
	return func(c *Client) {
		if failures == 0 {
			return
		}
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "goalline-api",
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !errors.Is(err, common.ErrUnavailable) || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Warn(context.Background(), "circuit breaker state change",
					"breaker", name, "from", from.String(), "to", to.String())
			},
		})
	}
}

// New builds a Client for baseURL, e.g. "http://127.0.0.1:5000/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Segment escapes a single path segment.
func Segment(s string) string { return url.PathEscape(s) }

// Do sends req and decodes a 2xx JSON body into out (when out is non-nil).
//
// A non-2xx response becomes *common.APIError carrying the backend's message
// verbatim. A request that produced no response returns common.ErrUnavailable.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if c.breaker == nil {
		return c.do(ctx, req, out)
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.do(ctx, req, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Debug(ctx, "request rejected by open breaker", "method", req.Method, "path", req.Path)
		return common.ErrUnavailable
	}
	return err
}

func (c *Client) do(ctx context.Context, req Request, out any) error {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+req.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", req.Method, "path", req.Path,
			"request_id", requestID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", common.ErrUnavailable, ctxErr)
		}
		return common.ErrUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Debug(ctx, "read body failed", "request_id", requestID, "error", err)
		return common.ErrUnavailable
	}

	c.logger.Debug(ctx, "request done", "method", req.Method, "path", req.Path,
		"status", resp.StatusCode, "request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
