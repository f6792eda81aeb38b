package application

import (
	"context"

	"appcatalog/internal/domain"
	"appcatalog/internal/logger"
	"appcatalog/internal/ports"
)

// IntentResolver finds the entry point used to open an app's settings
type IntentResolver struct {
	activities ports.ActivityResolver
	log        *logger.Logger
}

// NewIntentResolver creates a resolver backed by the platform activity registry
func NewIntentResolver(activities ports.ActivityResolver, log *logger.Logger) *IntentResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &IntentResolver{activities: activities, log: log}
}

// ResolveSettingsEntryPoint returns the module settings activity of packageName
// for userID, falling back to its launcher activity. ok is false when the
// package exposes neither, which callers should treat as "nothing to open".
func (r *IntentResolver) ResolveSettingsEntryPoint(ctx context.Context, packageName string, userID int) (*domain.Intent, bool) {
	if intent, ok := r.ResolveByCategory(ctx, packageName, userID, domain.CategoryModuleSettings); ok {
		return intent, true
	}
	return r.ResolveByCategory(ctx, packageName, userID, domain.CategoryLauncher)
}

// ResolveByCategory returns a new-task intent for the first activity of
// packageName matching MAIN/category. The platform's ordering is trusted.
func (r *IntentResolver) ResolveByCategory(ctx context.Context, packageName string, userID int, category string) (*domain.Intent, bool) {
	if r.activities == nil {
		return nil, false
	}

	filter := domain.NewCategoryFilter(packageName, category)
	matches, err := r.activities.QueryActivities(ctx, filter, userID)
	if err != nil {
		r.log.Warn().
			Err(&UnavailableError{Op: "query activities", Err: err}).
			Str("package", packageName).
			Int("user", userID).
			Str("category", category).
			Msg("activity query failed, treating as no entry point")
		return nil, false
	}
	if len(matches) == 0 {
		return nil, false
	}

	return domain.NewLaunchIntent(filter, matches[0]), true
}
