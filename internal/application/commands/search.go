package commands

import (
	"context"
	"fmt"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// SearchCommand searches shortcuts by name or target via the index.
// The index is synced from the store before querying so results never
// lag behind the JSON document.
type SearchCommand struct {
	store ports.ShortcutStore
	index ports.ShortcutIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.ShortcutStore, index ports.ShortcutIndex, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		index: index,
		Query: query,
	}
}

// Validate checks if the search operation is valid
func (c *SearchCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.Shortcut, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	all, err := c.store.List(domain.FilterAll)
	if err != nil {
		return nil, err
	}

	if err := c.index.Sync(all); err != nil {
		return nil, fmt.Errorf("failed to sync index: %w", err)
	}

	return c.index.Search(c.Query)
}
