package federation

import (
	"encoding/json"

	"github.com/stellar/go/keypair"
)

// Record is a resolved federation response.
type Record struct {
	// StellarAddress is the address the server answered for, e.g. "bob*example.org".
	StellarAddress string

	// AccountID is the account payments should be sent to.
	AccountID *keypair.FromAddress

	// Memo must be attached to payments to this address. Nil when the server sent none.
	Memo Memo
}

// wireRecord is the SEP-2 JSON form of a Record. memo_type and memo are
// pointers so that an absent (or null) field can be told apart from "".
type wireRecord struct {
	StellarAddress *string `json:"stellar_address"`
	AccountID      *string `json:"account_id"`
	MemoType       *string `json:"memo_type,omitempty"`
	Memo           *string `json:"memo,omitempty"`
}

// MarshalJSON encodes the record in the SEP-2 response format.
func (r Record) MarshalJSON() ([]byte, error) {
	var w wireRecord
	w.StellarAddress = &r.StellarAddress
	if r.AccountID != nil {
		address := r.AccountID.Address()
		w.AccountID = &address
	}
	if r.Memo != nil {
		memoType, value := string(r.Memo.Type()), r.Memo.Value()
		w.MemoType, w.Memo = &memoType, &value
	}
	return json.Marshal(w)
}
