// Package session owns the client's credential pair.
//
// The Store is the single source of truth for the access and refresh
// tokens: the HTTP client reads them before every request and writes them
// after every refresh, and never keeps a private copy. Two implementations
// are provided: MemoryStore for tests and short-lived processes, and
// PersistentStore, which keeps the pair in the local SQLite database so a
// session survives restarts of the CLI.
package session

import (
	"context"

	"golang.org/x/oauth2"
)

// Store holds the credential pair. Absent tokens are reported as "".
type Store interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	// SetTokens replaces both tokens. An empty refresh token is stored as
	// empty; callers that want to keep the previous one must pass it.
	SetTokens(ctx context.Context, access, refresh string) error
	// Clear erases both tokens, including any persisted copy.
	Clear(ctx context.Context) error
}

// Tokens returns the stored pair as an oauth2.Token, with Expiry taken from
// the access token's exp claim when it can be decoded. It returns
// (nil, nil) when no access token is stored.
func Tokens(ctx context.Context, s Store) (*oauth2.Token, error) {
	access, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, nil
	}
	refresh, err := s.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}

	tok := &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}
	if c, err := ParseClaims(access); err == nil && c.ExpiresAt != nil {
		tok.Expiry = c.ExpiresAt.Time
	}
	return tok, nil
}
