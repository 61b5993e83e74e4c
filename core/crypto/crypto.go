// Package crypto wraps the stellar/go key and encoding primitives the federation
// decoder depends on.
package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/stellar/go/keypair"
)

// ParseAccountID parses a Stellar account id (G...) after trimming surrounding whitespace.
func ParseAccountID(accountID string) (*keypair.FromAddress, error) {
	kp, err := keypair.ParseAddress(strings.TrimSpace(accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to parse account id: %w", err)
	}
	return kp, nil
}

// DecodeBase64 decodes a standard, padded base64 string such as a hash memo value.
func DecodeBase64(value string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return b, nil
}

// EncodeBase64 is the inverse of DecodeBase64.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
