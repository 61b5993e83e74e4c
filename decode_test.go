package federation

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marwen-abid/stellar-federation-go/errors"
)

func response(fields string) []byte {
	body := fmt.Sprintf(`{"stellar_address":"bob*example.org","account_id":%q`, testAccount)
	if fields != "" {
		body += "," + fields
	}
	return []byte(body + "}")
}

func hashBytes() []byte {
	b := make([]byte, HashMemoLength)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestDecodeRecordWithoutMemo(t *testing.T) {
	record, err := DecodeRecord(response(""))
	require.NoError(t, err)
	require.Equal(t, "bob*example.org", record.StellarAddress)
	require.Equal(t, testAccount, record.AccountID.Address())
	require.Nil(t, record.Memo)

	record, err = DecodeRecord(response(`"memo_type":null,"memo":null`))
	require.NoError(t, err)
	require.Nil(t, record.Memo)

	record, err = DecodeRecord(response(`"name":"bob","Memo":"7","extra":{"memo":"8"}`))
	require.NoError(t, err)
	require.Nil(t, record.Memo)
}

func TestDecodeRecordTrimsAccountID(t *testing.T) {
	body := fmt.Sprintf(`{"stellar_address":"bob*example.org","account_id":" %s\n"}`, testAccount)
	record, err := DecodeRecord([]byte(body))
	require.NoError(t, err)
	require.Equal(t, testAccount, record.AccountID.Address())
}

func TestDecodeRecordMemos(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		record, err := DecodeRecord(response(`"memo_type":"text","memo":"hello"`))
		require.NoError(t, err)
		memo, ok := record.Memo.(TextMemo)
		require.True(t, ok)
		require.Equal(t, "hello", memo.Text())
	})

	t.Run("empty text", func(t *testing.T) {
		record, err := DecodeRecord(response(`"memo_type":"text","memo":""`))
		require.NoError(t, err)
		require.Equal(t, MemoTypeText, record.Memo.Type())
		require.Equal(t, "", record.Memo.Value())
	})

	t.Run("id", func(t *testing.T) {
		record, err := DecodeRecord(response(`"memo_type":"id","memo":"12345"`))
		require.NoError(t, err)
		require.Equal(t, IDMemo(12345), record.Memo)
	})

	t.Run("max id", func(t *testing.T) {
		record, err := DecodeRecord(response(`"memo_type":"id","memo":"18446744073709551615"`))
		require.NoError(t, err)
		require.Equal(t, IDMemo(18446744073709551615), record.Memo)
	})

	t.Run("hash", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(hashBytes())
		record, err := DecodeRecord(response(fmt.Sprintf(`"memo_type":"hash","memo":%q`, encoded)))
		require.NoError(t, err)
		memo, ok := record.Memo.(HashMemo)
		require.True(t, ok)
		require.Equal(t, hashBytes(), memo[:])
	})
}

func TestDecodeRecordInvalidMemo(t *testing.T) {
	tests := map[string]string{
		"type without memo":   `"memo_type":"text"`,
		"memo without type":   `"memo":"hello"`,
		"null memo":           `"memo_type":"id","memo":null`,
		"unknown type":        `"memo_type":"return","memo":"abc"`,
		"empty type":          `"memo_type":"","memo":""`,
		"non numeric id":      `"memo_type":"id","memo":"abc"`,
		"negative id":         `"memo_type":"id","memo":"-1"`,
		"overflowing id":      `"memo_type":"id","memo":"18446744073709551616"`,
		"text too long":       fmt.Sprintf(`"memo_type":"text","memo":%q`, strings.Repeat("a", 29)),
		"invalid base64 hash": `"memo_type":"hash","memo":"not-base64!"`,
		"short hash":          fmt.Sprintf(`"memo_type":"hash","memo":%q`, base64.StdEncoding.EncodeToString([]byte("short"))),
	}
	for name, fields := range tests {
		t.Run(name, func(t *testing.T) {
			record, err := DecodeRecord(response(fields))
			require.Nil(t, record)
			require.True(t, errors.HasCode(err, errors.INVALID_MEMO), "got %v", err)
		})
	}
}

func TestDecodeRecordTextMemoLimit(t *testing.T) {
	record, err := DecodeRecord(response(fmt.Sprintf(`"memo_type":"text","memo":%q`, strings.Repeat("a", 28))))
	require.NoError(t, err)
	require.Len(t, record.Memo.Value(), 28)
}

func TestDecodeRecordMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":              ``,
		"not json":           `<html></html>`,
		"array":              `[]`,
		"null":               `null`,
		"string":             `"bob*example.org"`,
		"missing address":    fmt.Sprintf(`{"account_id":%q}`, testAccount),
		"missing account":    `{"stellar_address":"bob*example.org"}`,
		"numeric address":    fmt.Sprintf(`{"stellar_address":1,"account_id":%q}`, testAccount),
		"numeric memo":       fmt.Sprintf(`{"stellar_address":"bob*example.org","account_id":%q,"memo_type":"id","memo":12345}`, testAccount),
		"truncated":          `{"stellar_address":"bob*example.org"`,
		"uppercase fields":   fmt.Sprintf(`{"STELLAR_ADDRESS":"bob*example.org","Account_ID":%q,"MEMO_TYPE":"id","MEMO":"7"}`, testAccount),
		"mixed case account": fmt.Sprintf(`{"stellar_address":"bob*example.org","Account_Id":%q}`, testAccount),
		"repeated memo":      string(response(`"memo_type":"id","memo":"7","memo_type":null,"memo":null`)),
		"repeated account":   string(response(fmt.Sprintf(`"account_id":%q`, testAccount))),
		"trailing data":      string(response("")) + `{}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRecord([]byte(body))
			require.True(t, errors.HasCode(err, errors.MALFORMED_RESPONSE), "got %v", err)
		})
	}
}

func TestDecodeRecordInvalidAccountID(t *testing.T) {
	for _, account := range []string{
		"",
		"not-an-account",
		"SBUFHFEIMKTBQQFDSCAZFOC6MAUE3EHBVE4S4RYKMX62PMWDIDSD44CP",
		"GBUFHFEIMKTBQQFDSCAZFOC6MAUE3EHBVE4S4RYKMX62PMWDIDSD44CQ",
	} {
		t.Run(account, func(t *testing.T) {
			body := fmt.Sprintf(`{"stellar_address":"bob*example.org","account_id":%q,"memo_type":"id","memo":"1"}`, account)
			_, err := DecodeRecord([]byte(body))
			require.True(t, errors.HasCode(err, errors.INVALID_ACCOUNT_ID), "got %v", err)
		})
	}
}

func TestRecordMarshalJSON(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(hashBytes())
	for _, fields := range []string{
		``,
		`"memo_type":"text","memo":"hello"`,
		`"memo_type":"id","memo":"12345"`,
		fmt.Sprintf(`"memo_type":"hash","memo":%q`, encoded),
	} {
		record, err := DecodeRecord(response(fields))
		require.NoError(t, err)

		out, err := json.Marshal(record)
		require.NoError(t, err)
		require.JSONEq(t, string(response(fields)), string(out))
	}
}
