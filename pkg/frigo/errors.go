package frigo

import "fmt"

// ErrorCode classifies an error returned by the public frigo API.
type ErrorCode int

const (
	// ErrUnknown is the zero-value error code; it should never appear on
	// an error actually returned by this package.
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig signals a configuration that fails the FRI
	// precondition checks.
	ErrInvalidConfig

	// ErrProofGeneration signals that proving could not complete.
	ErrProofGeneration

	// ErrProofVerification signals that a proof was rejected.
	ErrProofVerification

	// ErrInvalidInput signals a malformed caller-supplied argument, such
	// as a polynomial or coefficient list.
	ErrInvalidInput
)

// FriError wraps an underlying internal error with a stable public code.
type FriError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *FriError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("frigo error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("frigo error [%d]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying internal sentinel so callers can still
// errors.Is against package-level sentinels if they choose to.
func (e *FriError) Unwrap() error {
	return e.Cause
}

// Is compares by code only, matching any FriError sharing the same code.
func (e *FriError) Is(target error) bool {
	t, ok := target.(*FriError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func wrapError(code ErrorCode, message string, cause error) *FriError {
	return &FriError{Code: code, Message: message, Cause: cause}
}
