package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.PreferenceStore = (*MemoryPreferences)(nil)
var _ port.PreferenceStore = (*SQLPreferences)(nil)

// MemoryPreferences keeps preferences for the process lifetime.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (m *MemoryPreferences) GetPreference(
	ctx context.Context, key string,
) (string, bool, error) {
	const op = "MemoryPreferences.GetPreference"

	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryPreferences) PutPreference(
	ctx context.Context, key, value string,
) error {
	const op = "MemoryPreferences.PutPreference"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SQLPreferences stores preferences in the preferences table.
type SQLPreferences struct {
	sqldb sqldb
}

func NewSQLPreferences(sqldb sqldb) SQLPreferences {
	return SQLPreferences{sqldb}
}

func (r SQLPreferences) GetPreference(
	ctx context.Context, key string,
) (string, bool, error) {
	const op = "SQLPreferences.GetPreference"

	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT value FROM preferences WHERE key = $1;`

	var v string
	err := r.sqldb.QueryRowContext(ctx, query, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return v, true, nil
}

func (r SQLPreferences) PutPreference(
	ctx context.Context, key, value string,
) error {
	const op = "SQLPreferences.PutPreference"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.sqldb.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}
