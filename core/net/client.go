// Package net provides the HTTP transport used to talk to federation servers and
// to fetch stellar.toml documents.
//
// The Client performs a single GET per call: retry policy belongs to the caller.
// Bodies are read in full, bounded by a configurable size limit, and closed before
// Get returns, so a Response owns its buffer and nothing has to be released.
//
// Example usage:
//
//	client := net.NewClient(
//	    net.WithTimeout(10*time.Second),
//	    net.WithLogger(logger),
//	)
//	resp, err := client.Get(ctx, "https://example.com/federation?type=name&q=bob%2Aexample.com")
package net

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/marwen-abid/stellar-federation-go/errors"
)

// Default configuration values
const (
	defaultTimeout     = 30 * time.Second
	defaultMaxBodySize = 100 * 1024
	defaultUserAgent   = "stellar-federation-go"
)

// Client is an HTTP client with timeout and bounded response bodies.
type Client struct {
	httpClient  *http.Client
	maxBodySize int64
	userAgent   string
	logger      *zap.Logger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout (default: 30s).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTransport sets the round tripper used for requests.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithMaxBodySize sets the largest response body accepted, in bytes (default: 100 KiB).
func WithMaxBodySize(n int64) ClientOption {
	return func(c *Client) {
		c.maxBodySize = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.Named("net")
	}
}

// NewClient creates a new HTTP client with the given options.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		maxBodySize: defaultMaxBodySize,
		userAgent:   defaultUserAgent,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get performs a single HTTP GET request and reads the whole body.
// Any status code is returned as a Response; only transport failures are errors.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewClientError(errors.INVALID_URL, "failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", url), zap.Error(err))
		return nil, errors.NewClientError(errors.TRANSPORT_ERROR, fmt.Sprintf("GET %s failed", url), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, errors.NewClientError(errors.TRANSPORT_ERROR, "failed to read response body", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, errors.NewClientError(
			errors.TRANSPORT_ERROR,
			fmt.Sprintf("response body exceeds %d bytes", c.maxBodySize),
			nil,
		)
	}

	c.logger.Debug("request completed",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
