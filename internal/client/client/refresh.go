package client

import (
	"context"
	"sync"

	"github.com/sainaif/animalsys/internal/common"
	"github.com/sainaif/animalsys/internal/metrics"
)

type refreshState int

const (
	stateIdle refreshState = iota
	stateRefreshing
)

type refreshResult struct {
	token string
	err   error
}

// refresher serializes token refreshes for one Client. At most one refresh
// call is outstanding; requests failing meanwhile queue as waiters.
type refresher struct {
	client *Client

	mu      sync.Mutex
	state   refreshState
	waiters []chan refreshResult
}

// acquire returns an access token to replay with, given the token the
// failed request was sent with.
//
// If a refresh is in flight the caller waits for it. If the store already
// holds a different token, a refresh completed after the request was sent
// and that token is returned without another refresh. If the store is empty
// although the request carried a token, the session was torn down in the
// meantime and common.ErrNotAuthenticated is returned.
func (r *refresher) acquire(ctx context.Context, sentWith string) (string, error) {
	r.mu.Lock()

	if r.state == stateRefreshing {
		ch := make(chan refreshResult, 1)
		r.waiters = append(r.waiters, ch)
		r.mu.Unlock()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	current, err := r.client.store.AccessToken(ctx)
	if err != nil {
		r.mu.Unlock()
		return "", err
	}
	switch {
	case current != "" && current != sentWith:
		r.mu.Unlock()
		return current, nil
	case current == "" && sentWith != "":
		r.mu.Unlock()
		return "", common.ErrNotAuthenticated
	}

	r.state = stateRefreshing
	r.mu.Unlock()

	token, err := r.refresh(ctx)
	if err != nil {
		r.client.endSession(ctx, err)
	}

	r.mu.Lock()
	waiters := r.waiters
	r.waiters = nil
	r.state = stateIdle
	for _, ch := range waiters {
		ch <- refreshResult{token: token, err: err}
	}
	r.mu.Unlock()

	return token, err
}

// refresh performs the refresh call and stores the new pair. The call is
// detached from the caller's cancellation, since its outcome is shared by
// every waiter; the per-request timeout still bounds it.
func (r *refresher) refresh(ctx context.Context) (string, error) {
	c := r.client
	ctx = context.WithoutCancel(ctx)

	refreshToken, err := c.store.RefreshToken(ctx)
	if err != nil {
		c.metrics.ObserveRefresh(metrics.RefreshFailed)
		return "", &RefreshFailedError{Err: err}
	}
	if refreshToken == "" {
		c.metrics.ObserveRefresh(metrics.RefreshNoToken)
		c.log.Info(ctx, "no refresh token, ending session")
		return "", ErrNoRefreshToken
	}

	c.log.Debug(ctx, "refreshing access token")

	tok, err := c.requestRefresh(ctx, refreshToken)
	if err != nil {
		c.metrics.ObserveRefresh(metrics.RefreshFailed)
		c.log.Warn(ctx, "token refresh failed", "error", err)
		return "", &RefreshFailedError{Err: err}
	}

	next := tok.RefreshToken
	if next == "" {
		next = refreshToken
	}
	if err := c.store.SetTokens(ctx, tok.AccessToken, next); err != nil {
		c.metrics.ObserveRefresh(metrics.RefreshFailed)
		return "", &RefreshFailedError{Err: err}
	}

	c.metrics.ObserveRefresh(metrics.RefreshOK)
	c.log.Info(ctx, "access token refreshed", "rotated", tok.RefreshToken != "")
	return tok.AccessToken, nil
}

// endSession clears the credentials and redirects to login. It runs once
// per failed refresh, before any waiter is released, so that every caller
// observes an empty store.
func (c *Client) endSession(ctx context.Context, cause error) {
	ctx = context.WithoutCancel(ctx)

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clear session", "error", err)
	}
	c.metrics.ObserveSessionEnded()
	c.log.Info(ctx, "session ended", "cause", cause)

	if c.nav != nil {
		c.nav.RedirectToLogin()
	}
}
