// Package federation implements the client side of the Stellar Federation
// protocol (SEP-2): mapping a "name*domain" address, an account id or a
// transaction id to the account and optional memo a payment should use.
//
// The package holds the pure parts of a lookup: address parsing, federation
// query URL construction and response decoding. Network orchestration lives in
// package sdk; stellar.toml discovery lives in package core/toml.
package federation

import "context"

// ServerDiscoverer finds the federation server a domain publishes.
// Implementations return an empty string, not an error, when the domain
// publishes no federation server.
type ServerDiscoverer interface {
	FederationServer(ctx context.Context, domain string) (string, error)
}
