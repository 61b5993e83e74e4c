// Package toml provides functionality for fetching, parsing, and generating
// stellar.toml files as specified in SEP-1.
//
// The Resolver fetches a domain's stellar.toml and reports the federation server
// it advertises. The Publisher renders stellar.toml content for a domain.
package toml

// Info represents the parsed contents of a stellar.toml file.
// Only the fields relevant to federation and anchor discovery are kept.
type Info struct {
	// FEDERATION_SERVER is the SEP-2 endpoint answering federation queries.
	FederationServer string `toml:"FEDERATION_SERVER,omitempty"`

	// NETWORK_PASSPHRASE identifies the Stellar network (testnet/mainnet).
	NetworkPassphrase string `toml:"NETWORK_PASSPHRASE,omitempty"`

	// SIGNING_KEY is the domain's public key used for SEP-10 authentication.
	SigningKey string `toml:"SIGNING_KEY,omitempty"`

	// WEB_AUTH_ENDPOINT is the URL for SEP-10 Stellar Web Authentication.
	WebAuthEndpoint string `toml:"WEB_AUTH_ENDPOINT,omitempty"`

	// TransferServerSep6 is the URL for SEP-6 Non-Interactive Deposit/Withdrawal.
	TransferServerSep6 string `toml:"TRANSFER_SERVER,omitempty"`

	// TransferServerSep24 is the URL for SEP-24 Interactive Deposit/Withdrawal.
	TransferServerSep24 string `toml:"TRANSFER_SERVER_SEP0024,omitempty"`

	// Currencies lists assets supported by the domain.
	Currencies []CurrencyInfo `toml:"CURRENCIES,omitempty"`
}

// CurrencyInfo describes a Stellar asset listed in stellar.toml.
type CurrencyInfo struct {
	Code            string `toml:"code"`
	Issuer          string `toml:"issuer,omitempty"`
	Status          string `toml:"status,omitempty"`
	DisplayDecimals int    `toml:"display_decimals,omitempty"`
	AnchorAssetType string `toml:"anchor_asset_type,omitempty"`
	Description     string `toml:"desc,omitempty"`
}
