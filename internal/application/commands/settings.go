package commands

import (
	"context"
	"fmt"

	"appcatalog/internal/application"
	"appcatalog/internal/domain"
)

// ResolveSettingsCommand resolves the "open settings" intent for an app
type ResolveSettingsCommand struct {
	engine      *application.Engine
	PackageName string
	UserID      int
}

// NewResolveSettingsCommand creates a new ResolveSettingsCommand
func NewResolveSettingsCommand(engine *application.Engine, packageName string, userID int) *ResolveSettingsCommand {
	return &ResolveSettingsCommand{
		engine:      engine,
		PackageName: packageName,
		UserID:      userID,
	}
}

// Validate checks the package name and user
func (c *ResolveSettingsCommand) Validate() error {
	if err := application.ValidateRequired("packageName", c.PackageName); err != nil {
		return err
	}
	return application.ValidateUserID("userID", c.UserID)
}

// Execute runs the resolve command. A package without an entry point
// yields application.ErrNotFound.
func (c *ResolveSettingsCommand) Execute(ctx context.Context) (*domain.Intent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	intent, ok := c.engine.Resolver.ResolveSettingsEntryPoint(ctx, c.PackageName, c.UserID)
	if !ok {
		return nil, fmt.Errorf("no settings entry point for %s (user %d): %w", c.PackageName, c.UserID, application.ErrNotFound)
	}
	return intent, nil
}
