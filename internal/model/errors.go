package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated means the call carries no valid session.
	ErrUnauthenticated = errors.New("the function must be called while authenticated")
	// ErrHandleTaken means another profile already holds the handle.
	ErrHandleTaken = errors.New("handle is already taken")
	// ErrProfileExists means the identity already owns a profile.
	ErrProfileExists = errors.New("profile already exists")
	// ErrEmailTaken means an identity with the email already exists.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrInvalidCredentials is returned for unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
