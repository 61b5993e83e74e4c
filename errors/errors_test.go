package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResponseError(t *testing.T) {
	tests := []struct {
		status int
		code   Code
	}{
		{400, CLIENT_ERROR},
		{404, CLIENT_ERROR},
		{499, CLIENT_ERROR},
		{500, SERVER_ERROR},
		{503, SERVER_ERROR},
		{302, SERVER_ERROR},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := NewResponseError(tt.status, []byte("body"))
			require.Equal(t, tt.code, err.Code)
			require.Equal(t, tt.status, err.StatusCode)
			require.Equal(t, []byte("body"), err.Body)
			require.Equal(t, "client", err.Layer)
		})
	}
}

func TestFederationErrorChain(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	inner := NewClientError(TRANSPORT_ERROR, "request failed", cause)
	outer := NewCoreError(DISCOVERY_FAILED, "could not resolve stellar.toml", inner)
	wrapped := fmt.Errorf("lookup: %w", outer)

	require.True(t, stderrors.Is(wrapped, &FederationError{Code: DISCOVERY_FAILED}))
	require.True(t, stderrors.Is(wrapped, &FederationError{Code: TRANSPORT_ERROR}))
	require.False(t, stderrors.Is(wrapped, &FederationError{Code: INVALID_MEMO}))
	require.True(t, stderrors.Is(wrapped, cause))

	require.True(t, HasCode(wrapped, TRANSPORT_ERROR))
	require.False(t, HasCode(wrapped, CLIENT_ERROR))
	require.False(t, HasCode(nil, CLIENT_ERROR))

	var fe *FederationError
	require.True(t, As(wrapped, &fe))
	require.Equal(t, DISCOVERY_FAILED, fe.Code)
	require.False(t, As(cause, &fe))
}

func TestFederationErrorMessage(t *testing.T) {
	err := NewCoreError(INVALID_ADDRESS, "missing *", nil).WithContext("address", "bob")
	require.Equal(t, "[core] INVALID_ADDRESS: missing *", err.Error())
	require.Equal(t, "bob", err.Context["address"])

	err = NewCoreError(INVALID_MEMO, "bad id memo", stderrors.New("parse error"))
	require.Equal(t, "[core] INVALID_MEMO: bad id memo (caused by: parse error)", err.Error())
}
