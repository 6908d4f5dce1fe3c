// Package upstream implements the outbound client for the order-management
// REST backend. Every request carries Content-Type: application/json and,
// when a token is available, Authorization: Bearer <token>. Non-2xx
// responses are normalized into a single Error kind carrying the backend's
// message, or "Network error" when no message can be parsed.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/api/metrics"
)

// Error is the one error kind produced by the backend client. Status is the
// HTTP status code, or 0 for transport failures where no response arrived.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// TokenSource yields the current bearer token, or "" when unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the backend. No automatic retry, no request cancellation
// beyond the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL. The token source is
// attached later with SetTokenSource because the session service that
// provides tokens is itself constructed on top of this client.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  nil,
		log:     log,
	}
}

// SetTokenSource wires the provider of the current session token.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// do performs one request. body is marshalled as JSON when non-nil; the
// response body is unmarshalled into out when non-nil. extra headers are
// added verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out any, extra http.Header) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("upstream: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "0").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return &Error{Status: 0, Message: "Network error"}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts the backend's {"message": ...} body, falling back to
// a generic message when the body is not the expected shape.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return "Network error"
	}
	return body.Message
}
