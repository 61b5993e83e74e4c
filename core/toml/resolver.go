package toml

import (
	"context"
	"fmt"
	"strings"

	burntsushi "github.com/BurntSushi/toml"
	"github.com/stellar/go/keypair"
	"go.uber.org/zap"

	"github.com/marwen-abid/stellar-federation-go/core/net"
	"github.com/marwen-abid/stellar-federation-go/errors"
)

const (
	wellKnownPath     = "/.well-known/stellar.toml"
	maxCurrencyArrays = 100
)

// Resolver fetches stellar.toml documents. Every call goes to the network.
type Resolver struct {
	client *net.Client
	logger *zap.Logger
}

type ResolverOption func(*Resolver)

// WithLogger sets the logger used for discovery tracing.
func WithLogger(logger *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger.Named("toml")
	}
}

func NewResolver(client *net.Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: client,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// URL returns the well-known location of the stellar.toml for domain.
func URL(domain string) string {
	url := "https://" + strings.TrimPrefix(domain, "https://")
	return strings.TrimSuffix(url, "/") + wellKnownPath
}

// Resolve fetches and parses the stellar.toml of domain. The document size is
// bounded by the net.Client's body limit.
func (r *Resolver) Resolve(ctx context.Context, domain string) (*Info, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, errors.NewCoreError(errors.TOML_FETCH_FAILED, "domain is required", nil)
	}

	url := URL(domain)
	resp, err := r.client.Get(ctx, url)
	if err != nil {
		return nil, errors.NewCoreError(errors.TOML_FETCH_FAILED, fmt.Sprintf("failed to fetch stellar.toml from %s", domain), err)
	}

	if resp.StatusCode != 200 {
		return nil, errors.NewCoreError(errors.TOML_FETCH_FAILED, fmt.Sprintf("stellar.toml fetch returned status %d", resp.StatusCode), nil).
			WithContext("domain", domain)
	}

	info, err := r.parse(resp.Body)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolved stellar.toml",
		zap.String("domain", domain),
		zap.String("federation_server", info.FederationServer),
	)
	return info, nil
}

// FederationServer returns the FEDERATION_SERVER advertised by domain, or ""
// when the document does not publish one.
func (r *Resolver) FederationServer(ctx context.Context, domain string) (string, error) {
	info, err := r.Resolve(ctx, domain)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(info.FederationServer), nil
}

func (r *Resolver) parse(content []byte) (*Info, error) {
	info := &Info{}
	if _, err := burntsushi.Decode(string(content), info); err != nil {
		return nil, errors.NewCoreError(errors.TOML_INVALID, "failed to parse stellar.toml", err)
	}

	if len(info.Currencies) > maxCurrencyArrays {
		info.Currencies = info.Currencies[:maxCurrencyArrays]
	}

	if info.SigningKey != "" {
		if _, err := keypair.ParseAddress(info.SigningKey); err != nil {
			return nil, errors.NewCoreError(errors.TOML_INVALID, fmt.Sprintf("invalid SIGNING_KEY format: %s", info.SigningKey), err)
		}
	}

	return info, nil
}
