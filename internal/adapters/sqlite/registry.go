package sqlite

import (
	"context"
	"fmt"

	"appcatalog/internal/domain"
	"appcatalog/internal/ports"
)

// Registry implements ports.Platform over an imported device registry
type Registry struct {
	db *DB
}

// Ensure Registry implements Platform
var _ ports.Platform = (*Registry)(nil)

// NewRegistry creates a registry backed by db
func NewRegistry(db *DB) *Registry {
	return &Registry{db: db}
}

// QueryActivities returns activities of an installed package matching filter,
// highest priority first
func (r *Registry) QueryActivities(ctx context.Context, filter domain.IntentFilter, userID int) ([]domain.ActivityMatch, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT a.package_name, a.activity_name
		FROM activities a
		JOIN packages p ON p.user_id = a.user_id AND p.package_name = a.package_name
		WHERE a.user_id = ? AND a.package_name = ? AND a.action = ? AND a.category = ?
			AND p.uninstalled = 0
		ORDER BY a.priority DESC, a.rowid
	`, userID, filter.Package, filter.Action, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var matches []domain.ActivityMatch
	for rows.Next() {
		var m domain.ActivityMatch
		if err := rows.Scan(&m.PackageName, &m.ActivityName); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// ListInstalledPackages lists packages for all users, or only user 0.
// Uninstalled packages are included only with MatchUninstalledPackages.
func (r *Registry) ListInstalledPackages(ctx context.Context, flags domain.PackageFlags, allUsers bool) ([]domain.AppRecord, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT user_id, package_name, label, first_install, last_update, uninstalled
		FROM packages
		WHERE (? OR user_id = 0) AND (? OR uninstalled = 0)
		ORDER BY user_id, package_name
	`, allUsers, flags.Has(domain.MatchUninstalledPackages))
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var apps []domain.AppRecord
	for rows.Next() {
		var a domain.AppRecord
		if err := rows.Scan(&a.UserID, &a.PackageName, &a.Label, &a.FirstInstallTime, &a.LastUpdateTime, &a.Uninstalled); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Import writes packages and activities in one transaction. With replace set
// the existing registry contents are dropped first.
func (r *Registry) Import(ctx context.Context, apps []domain.AppRecord, activities []domain.ActivityRecord, replace bool) error {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if replace {
		if err := tx.Clear(); err != nil {
			return fmt.Errorf("failed to clear registry: %w", err)
		}
	}
	for i := range apps {
		if err := tx.UpsertPackage(&apps[i]); err != nil {
			return fmt.Errorf("failed to write package %s: %w", apps[i].PackageName, err)
		}
	}
	for i := range activities {
		if err := tx.UpsertActivity(&activities[i]); err != nil {
			return fmt.Errorf("failed to write activity %s: %w", activities[i].ActivityName, err)
		}
	}

	return tx.Commit()
}
