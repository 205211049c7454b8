package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sainaif/animalsys/internal/dbx"
)

// values is the session_values table. It runs on either a *sql.DB or a
// *sql.Tx.
type values struct {
	db dbx.DBTX
}

// get returns (nil, nil) when name is absent.
func (v values) get(ctx context.Context, name string) ([]byte, error) {
	var b []byte
	err := v.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE name = ?`, name).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session value %s: %w", name, err)
	}
	return b, nil
}

func (v values) set(ctx context.Context, name string, b []byte) error {
	_, err := v.db.ExecContext(ctx, `
		INSERT INTO session_values (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, name, b)
	if err != nil {
		return fmt.Errorf("write session value %s: %w", name, err)
	}
	return nil
}

// remove deletes names in one statement. Absent names are ignored.
func (v values) remove(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	q := `DELETE FROM session_values WHERE name IN (?` + strings.Repeat(", ?", len(names)-1) + `)`
	if _, err := v.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete session values: %w", err)
	}
	return nil
}
