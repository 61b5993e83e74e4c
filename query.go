package federation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/stellar/go/keypair"

	"github.com/marwen-abid/stellar-federation-go/errors"
)

// Query types defined by SEP-2.
const (
	QueryTypeName    = "name"
	QueryTypeID      = "id"
	QueryTypeTxID    = "txid"
	QueryTypeForward = "forward"
)

// Param is a single query parameter of a forward request.
type Param struct {
	Key   string
	Value string
}

// ParseServerURL parses a federation server URL, which must be absolute and have a host.
func ParseServerURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.NewCoreError(errors.INVALID_URL, fmt.Sprintf("invalid federation server url %q", raw), err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.NewCoreError(errors.INVALID_URL, fmt.Sprintf("federation server url %q is not absolute", raw), nil)
	}
	return u, nil
}

// NameRequestURL returns the url resolving a Stellar address on server.
func NameRequestURL(server *url.URL, address string) *url.URL {
	return appendQuery(server, Param{"type", QueryTypeName}, Param{"q", address})
}

// AccountIDRequestURL returns the url for a reverse lookup of account on server.
func AccountIDRequestURL(server *url.URL, account *keypair.FromAddress) *url.URL {
	return appendQuery(server, Param{"type", QueryTypeID}, Param{"q", account.Address()})
}

// TransactionIDRequestURL returns the url looking up the sender of transaction txID.
func TransactionIDRequestURL(server *url.URL, txID string) *url.URL {
	return appendQuery(server, Param{"type", QueryTypeTxID}, Param{"q", txID})
}

// ForwardRequestURL returns the url for a forward request. The parameters a
// destination institution expects are listed in its stellar.toml; they are
// appended in the order given.
func ForwardRequestURL(server *url.URL, params []Param) *url.URL {
	return appendQuery(server, append([]Param{{"type", QueryTypeForward}}, params...)...)
}

// appendQuery copies u and appends params after any query it already carries.
// url.Values is not used because Encode sorts keys.
func appendQuery(u *url.URL, params ...Param) *url.URL {
	out := *u
	var b strings.Builder
	b.WriteString(u.RawQuery)
	for _, p := range params {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	out.RawQuery = b.String()
	out.ForceQuery = false
	return &out
}
