// Package client is the authenticated HTTP client for the animalsys REST API.
//
// # Overview
//
// Every resource service issues its calls through Client.Do. The client
//  1. attaches the stored access token as a bearer credential;
//  2. detects authentication failures (HTTP 401 by default);
//  3. coordinates a single token refresh across all requests that fail
//     while a refresh is due, queueing the rest;
//  4. replays each failed request once with the new token;
//  5. tears the session down when no refresh is possible.
//
// # Refresh protocol
//
// The refresher is either idle or refreshing. The first request that sees
// an authentication failure while idle performs POST /auth/refresh; any
// request failing while the refresh is in flight waits for its outcome
// instead of starting another one. Waiters are released in arrival order,
// before the triggering request replays. A request is replayed at most
// once: a second authentication failure for the same logical request is
// returned as *AuthExpiredError.
//
// When the refresh fails, or there is no refresh token to use, the stored
// credentials are cleared, the Navigator is asked to redirect to login
// exactly once, and every waiting request receives the same error.
//
// # Errors
//
// Callers see *TransportError, *HTTPError, *AuthExpiredError or
// *RefreshFailedError. Each matches a sentinel through errors.Is:
// ErrTransport, ErrHTTPStatus, ErrAuthExpired, ErrRefreshFailed.
//
// # Concurrency
//
// A Client is safe for concurrent use. The session store is the single
// source of truth for tokens; the client never keeps its own copy.
package client
