// Package common defines shared sentinel errors used across the deadline
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// ErrAuth is returned by login when the email is unknown or the password
	// does not match.
	ErrAuth = errors.New("invalid email or password")

	// ErrValidation marks a missing or malformed request parameter.
	ErrValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownPasswordMode is returned for an unsupported password storage mode.
	ErrUnknownPasswordMode = errors.New("unknown password mode")
)
