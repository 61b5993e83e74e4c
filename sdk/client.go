// Package sdk resolves Stellar federation addresses over the network.
// It discovers federation servers via stellar.toml (SEP-1) and queries them
// following SEP-2.
package sdk

import (
	"context"

	"go.uber.org/zap"

	federation "github.com/marwen-abid/stellar-federation-go"
	"github.com/marwen-abid/stellar-federation-go/core/net"
	"github.com/marwen-abid/stellar-federation-go/core/toml"
)

// Fetcher performs a single HTTP GET. *net.Client implements it.
type Fetcher interface {
	Get(ctx context.Context, url string) (*net.Response, error)
}

// Client is the entry point for federation lookups. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	httpClient Fetcher
	discoverer federation.ServerDiscoverer
	logger     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the fetcher used for federation queries. When it is a
// *net.Client it is also used for stellar.toml discovery.
func WithHTTPClient(client Fetcher) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithDiscoverer replaces stellar.toml based federation server discovery.
func WithDiscoverer(d federation.ServerDiscoverer) ClientOption {
	return func(c *Client) {
		c.discoverer = d
	}
}

// WithLogger sets the logger for the client and the components it creates.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new federation client.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = net.NewClient(net.WithLogger(client.logger))
	}
	if client.discoverer == nil {
		tomlClient, ok := client.httpClient.(*net.Client)
		if !ok {
			tomlClient = net.NewClient(net.WithLogger(client.logger))
		}
		client.discoverer = toml.NewResolver(tomlClient, toml.WithLogger(client.logger))
	}
	client.logger = client.logger.Named("sdk")

	return client
}

var _ Fetcher = (*net.Client)(nil)
var _ federation.ServerDiscoverer = (*toml.Resolver)(nil)
