package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"appcatalog/internal/ports"
)

// Preferences implements ports.PreferenceStore in the preferences table
type Preferences struct {
	db *DB
}

// Ensure Preferences implements PreferenceStore
var _ ports.PreferenceStore = (*Preferences)(nil)

// NewPreferences creates a preference store backed by db
func NewPreferences(db *DB) *Preferences {
	return &Preferences{db: db}
}

// GetInt returns the stored value for key, or def when unset
func (p *Preferences) GetInt(ctx context.Context, key string, def int) (int, error) {
	var v int
	err := p.db.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return v, nil
}

// SetInt stores value for key; it is visible to GetInt once SetInt returns
func (p *Preferences) SetInt(ctx context.Context, key string, value int) error {
	_, err := p.db.db.ExecContext(ctx, `INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}
