package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sainaif/animalsys/internal/logging"
	"github.com/sainaif/animalsys/internal/metrics"
)

// TokenStore is the session store the client reads credentials from and
// writes refreshed credentials to. Absent tokens are "".
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// Navigator is told when the session has ended and the user has to log in
// again.
type Navigator interface {
	RedirectToLogin()
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) RedirectToLogin() { f() }

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	Query   url.Values
	Body    any
	Headers http.Header

	// NoRefresh returns an authentication failure as a plain *HTTPError
	// without entering the refresh protocol. Used by login-style calls
	// where 401 means bad credentials, not an expired session.
	NoRefresh bool
}

// Response is a successful (2xx) API response with its body read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The per-request
// timeout still applies through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
		c.customHTTP = true
	}
}

// WithTimeout sets the per-request timeout applied to every call,
// including the refresh call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithAuthFailureStatus sets the status code treated as an authentication
// failure. The default is 401.
func WithAuthFailureStatus(code int) Option {
	return func(c *Client) { c.authStatus = code }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.nav = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}
