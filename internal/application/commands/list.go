package commands

import (
	"context"
	"fmt"
	"time"

	"appcatalog/internal/application"
	"appcatalog/internal/domain"
)

// AllUsers disables the user filter of ListAppsCommand
const AllUsers = -1

// ListAppsResult contains the ordered app list
type ListAppsResult struct {
	Apps      []domain.AppRecord
	Mode      domain.SortMode
	FetchedAt time.Time
	// FetchErr is the last catalog fetch failure, for diagnostics only
	FetchErr error
}

// ListAppsCommand lists the catalog in the persisted (or overridden) sort order
type ListAppsCommand struct {
	engine             *application.Engine
	Refresh            bool
	UserID             int
	IncludeUninstalled bool
	Mode               *domain.SortMode
}

// NewListAppsCommand creates a new ListAppsCommand for all users
func NewListAppsCommand(engine *application.Engine) *ListAppsCommand {
	return &ListAppsCommand{
		engine:             engine,
		UserID:             AllUsers,
		IncludeUninstalled: true,
	}
}

// Validate checks the filter values
func (c *ListAppsCommand) Validate() error {
	if c.UserID < AllUsers {
		return &application.ValidationError{
			Field:   "userID",
			Message: fmt.Sprintf("user ID must not be negative, got: %d", c.UserID),
		}
	}
	return nil
}

// Execute runs the list command
func (c *ListAppsCommand) Execute(ctx context.Context) (*ListAppsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	apps := c.engine.Catalog.Get(ctx, c.Refresh)

	mode := c.engine.Sort.Current(ctx)
	if c.Mode != nil {
		mode = domain.NormalizeSortMode(int(*c.Mode))
	}

	filtered := make([]domain.AppRecord, 0, len(apps))
	for _, app := range apps {
		if c.UserID != AllUsers && app.UserID != c.UserID {
			continue
		}
		if app.Uninstalled && !c.IncludeUninstalled {
			continue
		}
		filtered = append(filtered, app)
	}

	return &ListAppsResult{
		Apps:      c.engine.Ordering.Sort(filtered, int(mode)),
		Mode:      mode,
		FetchedAt: c.engine.Catalog.FetchedAt(),
		FetchErr:  c.engine.Catalog.Err(),
	}, nil
}
