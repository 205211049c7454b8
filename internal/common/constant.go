// Package common contains shared constants and sentinel errors used across
// the animalsys client components.
package common

import "time"

// Storage keys of the credential pair in the session store.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// HTTP header names set on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

const (
	// DefaultAPIBaseURL is used when neither an explicit base URL nor an
	// origin is configured.
	DefaultAPIBaseURL = "http://localhost:8080/api/v1"

	// APIPathPrefix is appended to a configured origin to form the base URL.
	APIPathPrefix = "/api/v1"

	// RefreshPath is the backend endpoint exchanging a refresh token for a
	// new access token.
	RefreshPath = "/auth/refresh"

	DefaultRequestTimeout = 30 * time.Second
)
