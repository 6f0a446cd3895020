package domain

import (
	"errors"
	"fmt"
)

// AuthError is a caller-facing error with a stable public code. The message is
// what the transport layer may show; internal detail travels wrapped underneath
// and never crosses the API boundary.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

var (
	// ErrUserAlreadyExists is returned by signup on a duplicate email.
	ErrUserAlreadyExists = &AuthError{Code: "USER_ALREADY_EXISTS", Message: "user already exists"}

	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// response does not reveal which emails are registered.
	ErrInvalidCredentials = &AuthError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}

	// ErrUnauthorized covers every refresh failure (bad signature, expiry,
	// malformed token, revoked user) without distinguishing them.
	ErrUnauthorized = &AuthError{Code: "UNAUTHORIZED", Message: "unauthorized"}

	// ErrInternal wraps unexpected store or hash failures.
	ErrInternal = &AuthError{Code: "INTERNAL_ERROR", Message: "internal error"}
)

// Repository-level sentinels. Adapters translate driver errors into these so
// the service layer never inspects driver types.
var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already taken")
)

// Internal wraps an unexpected failure, keeping the cause visible to logs and
// errors.Is while surfacing only the generic code to callers.
func Internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// CodeOf extracts the public code from an error chain, falling back to the
// internal-error code for anything unclassified.
func CodeOf(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrInternal.Code
}
