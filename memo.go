package federation

import (
	"fmt"
	"strconv"

	"github.com/stellar/go/txnbuild"

	"github.com/marwen-abid/stellar-federation-go/core/crypto"
)

// MemoType is the SEP-2 memo_type value.
type MemoType string

const (
	MemoTypeText MemoType = "text"
	MemoTypeID   MemoType = "id"
	MemoTypeHash MemoType = "hash"
)

// HashMemoLength is the byte length of a hash memo.
const HashMemoLength = 32

// Memo is a payment memo returned by a federation server. It is one of
// TextMemo, IDMemo or HashMemo.
type Memo interface {
	// Type returns the memo_type this memo is encoded with on the wire.
	Type() MemoType

	// Value returns the wire form of the memo value.
	Value() string

	// TxnMemo converts the memo for use with txnbuild when building a payment.
	TxnMemo() txnbuild.Memo

	memo()
}

// TextMemo is a text memo. Use NewTextMemo to build one.
type TextMemo struct {
	text string
}

// NewTextMemo validates text against the protocol's text memo limit.
func NewTextMemo(text string) (TextMemo, error) {
	if _, err := txnbuild.MemoText(text).ToXDR(); err != nil {
		return TextMemo{}, fmt.Errorf("invalid text memo: %w", err)
	}
	return TextMemo{text: text}, nil
}

func (m TextMemo) Text() string {
	return m.text
}

func (m TextMemo) Type() MemoType {
	return MemoTypeText
}

func (m TextMemo) Value() string {
	return m.text
}

func (m TextMemo) TxnMemo() txnbuild.Memo {
	return txnbuild.MemoText(m.text)
}

func (TextMemo) memo() {}

// IDMemo is a numeric memo.
type IDMemo uint64

func (m IDMemo) Type() MemoType {
	return MemoTypeID
}

func (m IDMemo) Value() string {
	return strconv.FormatUint(uint64(m), 10)
}

func (m IDMemo) TxnMemo() txnbuild.Memo {
	return txnbuild.MemoID(m)
}

func (IDMemo) memo() {}

// HashMemo is a 32 byte hash memo.
type HashMemo [HashMemoLength]byte

// NewHashMemo copies b into a HashMemo. b must be exactly HashMemoLength bytes.
func NewHashMemo(b []byte) (HashMemo, error) {
	var m HashMemo
	if len(b) != HashMemoLength {
		return m, fmt.Errorf("invalid hash memo: expected %d bytes, got %d", HashMemoLength, len(b))
	}
	copy(m[:], b)
	return m, nil
}

func (m HashMemo) Type() MemoType {
	return MemoTypeHash
}

func (m HashMemo) Value() string {
	return crypto.EncodeBase64(m[:])
}

func (m HashMemo) TxnMemo() txnbuild.Memo {
	return txnbuild.MemoHash(m)
}

func (HashMemo) memo() {}

var (
	_ Memo = TextMemo{}
	_ Memo = IDMemo(0)
	_ Memo = HashMemo{}
)
