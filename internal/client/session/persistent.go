package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sainaif/animalsys/internal/common"
	"github.com/sainaif/animalsys/internal/cryptox"
	"github.com/sainaif/animalsys/internal/dbx"
)

const saltKey = "session_salt"

// PersistentStore keeps the credential pair in the local session_values
// table.
// When a secret is configured the values are sealed with a key derived
// from it; otherwise they are stored as-is.
type PersistentStore struct {
	db     *sql.DB
	vals   values
	sealer *cryptox.Sealer
}

// NewPersistentStore returns a store over db. An empty secret disables
// sealing. The salt for key derivation is created on first use and kept in
// the same table, so it survives Clear.
func NewPersistentStore(ctx context.Context, db *sql.DB, secret string) (*PersistentStore, error) {
	s := &PersistentStore{db: db, vals: values{db: db}}
	if secret == "" {
		return s, nil
	}

	salt, err := s.vals.get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		if err := s.vals.set(ctx, saltKey, salt); err != nil {
			return nil, err
		}
	}

	sealer, err := cryptox.NewSealer(cryptox.DeriveKey([]byte(secret), salt))
	if err != nil {
		return nil, fmt.Errorf("init session sealer: %w", err)
	}
	s.sealer = sealer
	return s, nil
}

func (s *PersistentStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, common.AccessTokenKey)
}

func (s *PersistentStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, common.RefreshTokenKey)
}

// SetTokens writes both keys in one transaction.
func (s *PersistentStore) SetTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vals := values{db: tx}
		if err := s.put(ctx, vals, common.AccessTokenKey, access); err != nil {
			return err
		}
		return s.put(ctx, vals, common.RefreshTokenKey, refresh)
	})
}

func (s *PersistentStore) Clear(ctx context.Context) error {
	return s.vals.remove(ctx, common.AccessTokenKey, common.RefreshTokenKey)
}

func (s *PersistentStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.vals.get(ctx, key)
	if err != nil || len(v) == 0 {
		return "", err
	}
	if s.sealer == nil {
		return string(v), nil
	}
	plain, err := s.sealer.Open(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", common.ErrCorruptedSession, key, err)
	}
	return string(plain), nil
}

// put deletes the key for an empty value so that an absent token never
// leaves a sealed empty string behind.
func (s *PersistentStore) put(ctx context.Context, vals values, key, value string) error {
	if value == "" {
		return vals.remove(ctx, key)
	}
	v := []byte(value)
	if s.sealer != nil {
		v = s.sealer.Seal(v)
	}
	return vals.set(ctx, key, v)
}
