package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrLoginRequired    = errors.New("login required")
	ErrForbiddenRole    = errors.New("role not permitted")

	// ErrInvalidCredentials is returned by login when the backend rejects
	// the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors (malformed or unreadable token).
	ErrInvalidToken = errors.New("invalid token")

	// Local storage errors.
	ErrCorruptedSession = errors.New("corrupted session data")
)
