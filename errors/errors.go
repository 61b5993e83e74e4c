// Package errors defines the error taxonomy for the federation client.
//
// All errors returned by the module are represented as FederationError, which provides:
//   - Code: Machine-readable error identifier
//   - Message: Human-readable error description
//   - Layer: Which component layer produced the error (core, client)
//   - Cause: Underlying error, if any
//   - StatusCode and Body: the federation server response, for CLIENT_ERROR and SERVER_ERROR
//
// Use the constructor functions (NewCoreError, NewClientError, NewResponseError)
// to create properly typed errors with automatic layer assignment.
package errors

import "fmt"

// Code is a machine-readable error identifier.
type Code string

// Error codes - Core Layer
const (
	INVALID_ADDRESS           Code = "INVALID_ADDRESS"
	MISSING_FEDERATION_SERVER Code = "MISSING_FEDERATION_SERVER"
	DISCOVERY_FAILED          Code = "DISCOVERY_FAILED"
	INVALID_URL               Code = "INVALID_URL"
	MALFORMED_RESPONSE        Code = "MALFORMED_RESPONSE"
	INVALID_ACCOUNT_ID        Code = "INVALID_ACCOUNT_ID"
	INVALID_MEMO              Code = "INVALID_MEMO"
	TOML_FETCH_FAILED         Code = "TOML_FETCH_FAILED"
	TOML_INVALID              Code = "TOML_INVALID"
	ACCOUNT_NOT_FOUND         Code = "ACCOUNT_NOT_FOUND"
)

// Error codes - Client Layer
const (
	CLIENT_ERROR    Code = "CLIENT_ERROR"
	SERVER_ERROR    Code = "SERVER_ERROR"
	TRANSPORT_ERROR Code = "TRANSPORT_ERROR"
)

// FederationError is the base error type for all module errors.
type FederationError struct {
	Code    Code
	Message string
	Layer   string // "core", "client"
	Cause   error
	Context map[string]any

	// StatusCode and Body are set for CLIENT_ERROR and SERVER_ERROR.
	StatusCode int
	Body       []byte
}

// Error returns a formatted error string.
func (e *FederationError) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Layer, e.Code, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error, enabling error chain inspection.
func (e *FederationError) Unwrap() error {
	return e.Cause
}

// NewCoreError creates a core layer error.
func NewCoreError(code Code, message string, cause error) *FederationError {
	return &FederationError{
		Code:    code,
		Message: message,
		Layer:   "core",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewClientError creates a client layer error.
func NewClientError(code Code, message string, cause error) *FederationError {
	return &FederationError{
		Code:    code,
		Message: message,
		Layer:   "client",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewResponseError creates a client layer error for a non-success federation
// response. 4xx statuses map to CLIENT_ERROR, everything else to SERVER_ERROR.
func NewResponseError(statusCode int, body []byte) *FederationError {
	code := SERVER_ERROR
	if statusCode >= 400 && statusCode < 500 {
		code = CLIENT_ERROR
	}
	e := NewClientError(code, fmt.Sprintf("federation server returned status %d", statusCode), nil)
	e.StatusCode = statusCode
	e.Body = body
	return e
}

// WithContext attaches a key/value detail to the error and returns it.
func (e *FederationError) WithContext(key string, value any) *FederationError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Is checks if the target error is a FederationError with the same code.
func (e *FederationError) Is(target error) bool {
	if target == nil {
		return false
	}
	other, ok := target.(*FederationError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// As finds the first FederationError in err's chain and assigns it.
func As(err error, target **FederationError) bool {
	for err != nil {
		if v, ok := err.(*FederationError); ok {
			*target = v
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// HasCode reports whether err, or any error it wraps, is a FederationError with the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if v, ok := err.(*FederationError); ok && v.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
