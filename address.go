package federation

import (
	"strings"

	"github.com/marwen-abid/stellar-federation-go/errors"
)

// AddressSeparator splits the name and domain of a Stellar address.
const AddressSeparator = "*"

// SplitAddress splits a "name*domain" Stellar address. The address must hold
// exactly one separator with a non-empty part on each side. Nothing is trimmed
// or case folded.
func SplitAddress(address string) (name, domain string, err error) {
	parts := strings.Split(address, AddressSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.NewCoreError(
			errors.INVALID_ADDRESS,
			"stellar address must have the form name*domain",
			nil,
		).WithContext("address", address)
	}
	return parts[0], parts[1], nil
}
