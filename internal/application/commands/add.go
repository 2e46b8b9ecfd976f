package commands

import (
	"context"
	"fmt"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// AddResult contains the result of adding a shortcut
type AddResult struct {
	Shortcut *domain.Shortcut
	Message  string
}

// AddCommand creates a new shortcut in the store
type AddCommand struct {
	store   ports.ShortcutStore
	Name    string
	Type    domain.Type
	Target  string
	Gesture string
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(store ports.ShortcutStore, name string, typ domain.Type, target, gesture string) *AddCommand {
	return &AddCommand{
		store:   store,
		Name:    name,
		Type:    typ,
		Target:  target,
		Gesture: gesture,
	}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateType("type", c.Type); err != nil {
		return err
	}
	return application.ValidateTarget(c.Type, c.Target)
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	shortcut, err := c.store.Add(c.Name, c.Type, c.Target, c.Gesture)
	if err != nil {
		return nil, fmt.Errorf("failed to add shortcut: %w", err)
	}

	return &AddResult{
		Shortcut: shortcut,
		Message:  fmt.Sprintf("Added shortcut: %s", shortcut.Name),
	}, nil
}
