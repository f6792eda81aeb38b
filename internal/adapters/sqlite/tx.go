package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"appcatalog/internal/domain"
)

// registryTx batches registry writes
type registryTx struct {
	tx *sql.Tx
}

func (r *Registry) beginTx(ctx context.Context) (*registryTx, error) {
	tx, err := r.db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &registryTx{tx: tx}, nil
}

// Clear removes all packages and activities
func (t *registryTx) Clear() error {
	if _, err := t.tx.Exec(`DELETE FROM activities`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM packages`)
	return err
}

// UpsertPackage inserts or updates a package
func (t *registryTx) UpsertPackage(app *domain.AppRecord) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO packages (user_id, package_name, label, first_install, last_update, uninstalled)
		VALUES (?, ?, ?, ?, ?, ?)
	`, app.UserID, app.PackageName, app.Label, app.FirstInstallTime, app.LastUpdateTime, app.Uninstalled)
	return err
}

// UpsertActivity inserts or updates an activity declaration
func (t *registryTx) UpsertActivity(a *domain.ActivityRecord) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO activities (user_id, package_name, activity_name, action, category, priority)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.UserID, a.PackageName, a.ActivityName, a.Action, a.Category, a.Priority)
	return err
}

// Commit commits the transaction
func (t *registryTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *registryTx) Rollback() error {
	return t.tx.Rollback()
}
