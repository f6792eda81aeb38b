package commands

import (
	"context"
	"fmt"
	"strings"

	"appcatalog/internal/application"
	"appcatalog/internal/domain"
)

// SetSortResult contains the persisted sort mode
type SetSortResult struct {
	Mode    domain.SortMode
	Message string
}

// SetSortCommand persists a sort selection
type SetSortCommand struct {
	engine *application.Engine
	Action domain.SortAction
}

// NewSetSortCommand creates a new SetSortCommand
func NewSetSortCommand(engine *application.Engine, action domain.SortAction) *SetSortCommand {
	return &SetSortCommand{engine: engine, Action: action}
}

// Validate checks that the action is a sort selection
func (c *SetSortCommand) Validate() error {
	if _, ok := c.Action.Mode(); !ok {
		return &application.ValidationError{
			Field:   "sortAction",
			Message: fmt.Sprintf("unknown sort action, expected one of: %s", SortActionNames()),
		}
	}
	return nil
}

// Execute runs the set sort command
func (c *SetSortCommand) Execute(ctx context.Context) (*SetSortResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	handled, err := c.engine.Sort.Apply(ctx, c.Action)
	if err != nil {
		return nil, err
	}
	if !handled {
		return nil, application.ErrInvalidOperation
	}

	mode, _ := c.Action.Mode()
	return &SetSortResult{
		Mode:    mode,
		Message: fmt.Sprintf("Sorting by %s", mode),
	}, nil
}

// SortActionNames lists the accepted sort action names
func SortActionNames() string {
	actions := domain.SortActions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
