package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("remote store is not configured")
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrProfileMissing  = errors.New("authenticated session has no profile row")
)

var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrAlreadyBooked    = errors.New("user already has a booking for this event")
)

var (
	ErrValidation = errors.New("validation error")
)

// RemoteError carries a failed table or auth call's message verbatim. The
// core never retries; the caller decides what to do with it.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store: %s", e.Message)
}

// AuthError is an auth endpoint failure (bad credentials, existing account,
// password policy). Surfaced to the session consumer unmodified.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
