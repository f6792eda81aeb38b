package ports

import (
	"context"

	"appcatalog/internal/domain"
)

// ActivityResolver queries the platform activity registry
type ActivityResolver interface {
	// QueryActivities returns activities matching filter for userID,
	// in the platform's own relevance order
	QueryActivities(ctx context.Context, filter domain.IntentFilter, userID int) ([]domain.ActivityMatch, error)
}

// PackageSource lists installed packages from the platform package registry
type PackageSource interface {
	// ListInstalledPackages returns packages matching flags. When allUsers is
	// false only the primary user's packages are returned.
	ListInstalledPackages(ctx context.Context, flags domain.PackageFlags, allUsers bool) ([]domain.AppRecord, error)
}

// Platform is the user-scoped device registry the engine depends on.
// How it is obtained (direct API, shim, privileged bridge) is up to the adapter.
type Platform interface {
	ActivityResolver
	PackageSource
}
