package commands

import (
	"context"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// ListCommand lists shortcuts passing a filter
type ListCommand struct {
	store  ports.ShortcutStore
	Filter domain.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.ShortcutStore, filter domain.Filter) *ListCommand {
	return &ListCommand{
		store:  store,
		Filter: filter,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Shortcut, error) {
	return c.store.List(c.Filter)
}

// GetCommand fetches a single shortcut by ID
type GetCommand struct {
	store ports.ShortcutStore
	ID    string
}

// NewGetCommand creates a new GetCommand
func NewGetCommand(store ports.ShortcutStore, id string) *GetCommand {
	return &GetCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the get operation is valid
func (c *GetCommand) Validate() error {
	return application.ValidateRequired("shortcutID", c.ID)
}

// Execute runs the get command
func (c *GetCommand) Execute(ctx context.Context) (*domain.Shortcut, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.store.Get(c.ID)
}
