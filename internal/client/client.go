// Package client talks to the upstream cart server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/logger"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/rs/zerolog"
)

// RequestIDHeader propagates the inbound request id to the upstream server.
const RequestIDHeader = "X-Request-ID"

const maxBodyBytes = 1 << 20

// ErrServerStatus marks a 5xx upstream response.
var ErrServerStatus = errors.New("upstream server error")

// IsBreakerFailure reports whether err should count against the upstream breaker.
// A shopper abandoning a request says nothing about upstream health.
func IsBreakerFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is a JSON client for one upstream service.
type Client struct {
	Name    string
	BaseURL *url.URL
	HTTP    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewClient creates a client. A nil breaker disables breaker protection.
// Redirects are not followed: the cart server answers an anonymous shopper
// with a redirect to its login page.
func NewClient(name, baseURL string, timeout time.Duration, breaker *circuitbreaker.CircuitBreaker) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid %s base url %q", name, baseURL)
	}
	return &Client{
		Name:    name,
		BaseURL: u,
		HTTP: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		breaker: breaker,
	}, nil
}

// Breaker returns the breaker guarding this client, if any.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// PostJSON posts payload to path and reads the whole response.
// A 5xx response is returned together with an error wrapping ErrServerStatus.
func (c *Client) PostJSON(ctx context.Context, jar http.CookieJar, operation, path string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", operation, err)
	}
	target := c.BaseURL.ResolveReference(&url.URL{Path: path})

	httpClient := c.HTTP
	if jar != nil {
		scoped := *c.HTTP
		scoped.Jar = jar
		httpClient = &scoped
	}

	var resp *Response
	start := time.Now()
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if id := logger.RequestID(ctx); id != "" {
			req.Header.Set(RequestIDHeader, id)
		}

		r, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_ = r.Body.Close()
		}()

		data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return err
		}
		resp = &Response{StatusCode: r.StatusCode, Header: r.Header, Body: data}
		if r.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status %d", ErrServerStatus, r.StatusCode)
		}
		return nil
	}

	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call()
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	metrics.RecordUpstreamRequest(operation, status, time.Since(start))

	zerolog.Ctx(ctx).Debug().
		Str("upstream", c.Name).
		Str("operation", operation).
		Str("path", target.Path).
		Int("status_code", status).
		Dur("latency", time.Since(start)).
		Err(err).
		Msg("Upstream request")

	if err != nil {
		return resp, fmt.Errorf("%s %s: %w", c.Name, operation, err)
	}
	return resp, nil
}
