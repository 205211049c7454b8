package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport      = errors.New("transport error")
	ErrHTTPStatus     = errors.New("unexpected http status")
	ErrAuthExpired    = errors.New("authentication expired")
	ErrRefreshFailed  = errors.New("token refresh failed")
	ErrNoRefreshToken = errors.New("no refresh token")
)

// TransportError is a network or timeout failure. It is never retried.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// HTTPError is a non-2xx response that is not handled by the refresh
// protocol. Message holds the backend's error text when the body carries
// one.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPError) Is(target error) bool { return target == ErrHTTPStatus }

// AuthExpiredError is a terminal authentication failure: either the replay
// after a refresh was rejected too, or there was no way to refresh.
type AuthExpiredError struct {
	Method string
	Path   string
	Err    error
}

func (e *AuthExpiredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, ErrAuthExpired, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, ErrAuthExpired)
}

func (e *AuthExpiredError) Unwrap() error { return e.Err }

func (e *AuthExpiredError) Is(target error) bool { return target == ErrAuthExpired }

// RefreshFailedError is returned to every request that waited on a refresh
// which failed. Err is the transport or HTTP error of the refresh call.
type RefreshFailedError struct {
	Err error
}

func (e *RefreshFailedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRefreshFailed, e.Err)
}

func (e *RefreshFailedError) Unwrap() error { return e.Err }

func (e *RefreshFailedError) Is(target error) bool { return target == ErrRefreshFailed }
