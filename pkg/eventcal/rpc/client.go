package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client calls a remote eventcal server. It implements dispatch.Caller.
type Client struct {
	endpoint string
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a client for the server at baseURL
// (e.g. "http://localhost:8000").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + rpcPath,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call forwards the operation name and arguments to the server and
// returns the decoded result or the reconstructed typed error. Network
// and protocol failures come back as *TransportError.
func (c *Client) Call(ctx context.Context, op string, args []any) (any, error) {
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(request{
		ID:   uuid.NewString(),
		Op:   op,
		Args: args,
	})
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	httpRes, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: err}
	}
	defer httpRes.Body.Close()

	var res response
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: fmt.Errorf("decode response (status %d): %w", httpRes.StatusCode, err)}
	}
	if res.Error != nil {
		return nil, decodeError(res.Error)
	}
	return normalizeResult(res.Result), nil
}
