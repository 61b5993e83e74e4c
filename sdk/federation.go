package sdk

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/stellar/go/keypair"
	"go.uber.org/zap"

	federation "github.com/marwen-abid/stellar-federation-go"
	"github.com/marwen-abid/stellar-federation-go/errors"
)

// ResolveAddress resolves a "name*domain" Stellar address. The federation
// server is discovered from the domain's stellar.toml.
func (c *Client) ResolveAddress(ctx context.Context, address string) (*federation.Record, error) {
	_, domain, err := federation.SplitAddress(address)
	if err != nil {
		return nil, err
	}

	server, err := c.DiscoverServer(ctx, domain)
	if err != nil {
		return nil, err
	}

	return c.resolve(ctx, federation.NameRequestURL(server, address))
}

// ResolveAddressAtServer resolves a Stellar address using the given federation server.
func (c *Client) ResolveAddressAtServer(ctx context.Context, address, server string) (*federation.Record, error) {
	u, err := federation.ParseServerURL(server)
	if err != nil {
		return nil, err
	}
	return c.resolve(ctx, federation.NameRequestURL(u, address))
}

// ResolveAccountID performs a reverse lookup of account on the given federation server.
func (c *Client) ResolveAccountID(ctx context.Context, account *keypair.FromAddress, server string) (*federation.Record, error) {
	if account == nil {
		return nil, errors.NewCoreError(errors.INVALID_ACCOUNT_ID, "account is required", nil)
	}
	u, err := federation.ParseServerURL(server)
	if err != nil {
		return nil, err
	}
	return c.resolve(ctx, federation.AccountIDRequestURL(u, account))
}

// ResolveTransactionID looks up the sender of transaction txID on the given federation server.
func (c *Client) ResolveTransactionID(ctx context.Context, txID, server string) (*federation.Record, error) {
	u, err := federation.ParseServerURL(server)
	if err != nil {
		return nil, err
	}
	return c.resolve(ctx, federation.TransactionIDRequestURL(u, txID))
}

// ResolveForward resolves the information needed to send a payment to another
// network or institution. Which params to send is listed in the destination's
// stellar.toml.
func (c *Client) ResolveForward(ctx context.Context, params []federation.Param, server string) (*federation.Record, error) {
	u, err := federation.ParseServerURL(server)
	if err != nil {
		return nil, err
	}
	return c.resolve(ctx, federation.ForwardRequestURL(u, params))
}

// DiscoverServer returns the federation server that domain publishes in its
// stellar.toml. It fails with DISCOVERY_FAILED when the document cannot be
// obtained and MISSING_FEDERATION_SERVER when it names no server.
func (c *Client) DiscoverServer(ctx context.Context, domain string) (*url.URL, error) {
	raw, err := c.discoverer.FederationServer(ctx, domain)
	if err != nil {
		return nil, errors.NewCoreError(
			errors.DISCOVERY_FAILED,
			fmt.Sprintf("failed to discover federation server for %s", domain),
			err,
		).WithContext("domain", domain)
	}

	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewCoreError(
			errors.MISSING_FEDERATION_SERVER,
			fmt.Sprintf("%s does not provide FEDERATION_SERVER in stellar.toml", domain),
			nil,
		).WithContext("domain", domain)
	}

	return federation.ParseServerURL(raw)
}

// resolve fetches u once and decodes the response.
func (c *Client) resolve(ctx context.Context, u *url.URL) (*federation.Record, error) {
	target := u.String()
	resp, err := c.httpClient.Get(ctx, target)
	if err != nil {
		var fe *errors.FederationError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, errors.NewClientError(errors.TRANSPORT_ERROR, fmt.Sprintf("GET %s failed", target), err)
	}

	if !resp.IsSuccess() {
		c.logger.Debug("federation server rejected query",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.NewResponseError(resp.StatusCode, resp.Body).WithContext("url", target)
	}

	record, err := federation.DecodeRecord(resp.Body)
	if err != nil {
		c.logger.Debug("invalid federation response", zap.String("url", target), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("resolved federation record",
		zap.String("url", target),
		zap.String("stellar_address", record.StellarAddress),
		zap.String("account_id", record.AccountID.Address()),
	)
	return record, nil
}
