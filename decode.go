package federation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/marwen-abid/stellar-federation-go/core/crypto"
	"github.com/marwen-abid/stellar-federation-go/errors"
)

// DecodeRecord decodes a SEP-2 federation response body.
//
// The memo is accepted only when memo_type and memo are both absent, or when
// memo_type is "text", "id" or "hash" and memo is present and valid for that
// type. Any other combination fails with INVALID_MEMO.
func DecodeRecord(body []byte) (*Record, error) {
	w, err := decodeWireRecord(body)
	if err != nil {
		return nil, err
	}
	if w.StellarAddress == nil {
		return nil, malformed("federation response is missing stellar_address", nil)
	}
	if w.AccountID == nil {
		return nil, malformed("federation response is missing account_id", nil)
	}

	account, err := crypto.ParseAccountID(*w.AccountID)
	if err != nil {
		return nil, errors.NewCoreError(errors.INVALID_ACCOUNT_ID, "malformed account_id", err).
			WithContext("account_id", *w.AccountID)
	}

	memo, err := decodeMemo(w.MemoType, w.Memo)
	if err != nil {
		return nil, err
	}

	return &Record{
		StellarAddress: *w.StellarAddress,
		AccountID:      account,
		Memo:           memo,
	}, nil
}

// decodeWireRecord reads the top-level object field by field. Field names are
// matched exactly and a repeated field is rejected, so a later key can never
// replace a value the server already sent. Unknown fields are skipped.
func decodeWireRecord(body []byte) (*wireRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed("failed to decode federation response JSON", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed("federation response is not a JSON object", nil)
	}

	var w wireRecord
	fields := map[string]**string{
		"stellar_address": &w.StellarAddress,
		"account_id":      &w.AccountID,
		"memo_type":       &w.MemoType,
		"memo":            &w.Memo,
	}
	seen := make(map[string]bool, len(fields))

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed("failed to decode federation response JSON", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, malformed("federation response has a non-string key", nil)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed("failed to decode federation response JSON", err)
		}

		field, known := fields[key]
		if !known {
			continue
		}
		if seen[key] {
			return nil, malformed(fmt.Sprintf("federation response repeats %s", key), nil)
		}
		seen[key] = true
		if err := json.Unmarshal(raw, field); err != nil {
			return nil, malformed(fmt.Sprintf("%s must be a string", key), err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, malformed("failed to decode federation response JSON", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed("unexpected data after federation response", err)
	}
	return &w, nil
}

func malformed(message string, cause error) error {
	return errors.NewCoreError(errors.MALFORMED_RESPONSE, message, cause)
}

func decodeMemo(memoType, value *string) (Memo, error) {
	if memoType == nil && value == nil {
		return nil, nil
	}
	if memoType == nil || value == nil {
		return nil, errors.NewCoreError(errors.INVALID_MEMO, "memo_type and memo must be set together", nil)
	}

	switch MemoType(*memoType) {
	case MemoTypeText:
		m, err := NewTextMemo(*value)
		if err != nil {
			return nil, errors.NewCoreError(errors.INVALID_MEMO, "malformed text memo", err)
		}
		return m, nil
	case MemoTypeID:
		id, err := strconv.ParseUint(*value, 10, 64)
		if err != nil {
			return nil, errors.NewCoreError(errors.INVALID_MEMO, "malformed id memo", err)
		}
		return IDMemo(id), nil
	case MemoTypeHash:
		b, err := crypto.DecodeBase64(*value)
		if err != nil {
			return nil, errors.NewCoreError(errors.INVALID_MEMO, "malformed base64 hash memo", err)
		}
		m, err := NewHashMemo(b)
		if err != nil {
			return nil, errors.NewCoreError(errors.INVALID_MEMO, "malformed hash memo", err)
		}
		return m, nil
	default:
		return nil, errors.NewCoreError(errors.INVALID_MEMO, fmt.Sprintf("unknown memo_type %q", *memoType), nil)
	}
}
