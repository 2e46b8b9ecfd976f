package commands

import (
	"context"
	"fmt"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// UpdateResult contains the result of updating a shortcut
type UpdateResult struct {
	Shortcut *domain.Shortcut
	Message  string
}

// UpdateCommand applies a partial update to an existing shortcut
type UpdateCommand struct {
	store  ports.ShortcutStore
	ID     string
	Fields ports.ShortcutFields
}

// NewUpdateCommand creates a new UpdateCommand
func NewUpdateCommand(store ports.ShortcutStore, id string, fields ports.ShortcutFields) *UpdateCommand {
	return &UpdateCommand{
		store:  store,
		ID:     id,
		Fields: fields,
	}
}

// Validate checks the fields that can be checked without the stored record
func (c *UpdateCommand) Validate() error {
	if err := application.ValidateRequired("shortcutID", c.ID); err != nil {
		return err
	}
	if c.Fields.Name != nil {
		if err := application.ValidateRequired("name", *c.Fields.Name); err != nil {
			return err
		}
	}
	if c.Fields.Type != nil {
		if err := application.ValidateType("type", *c.Fields.Type); err != nil {
			return err
		}
	}
	if c.Fields.Name == nil && c.Fields.Type == nil && c.Fields.Target == nil && c.Fields.Gesture == nil {
		return &application.ValidationError{
			Field:   "fields",
			Message: "nothing to update",
		}
	}
	return nil
}

// Execute runs the update command. The target is validated against the
// effective type: the updated one when given, the stored one otherwise.
func (c *UpdateCommand) Execute(ctx context.Context) (*UpdateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := c.store.Get(c.ID)
	if err != nil {
		return nil, err
	}

	typ := existing.Type
	if c.Fields.Type != nil {
		typ = *c.Fields.Type
	}
	target := existing.Target
	if c.Fields.Target != nil {
		target = *c.Fields.Target
	}
	if c.Fields.Target != nil || c.Fields.Type != nil {
		if err := application.ValidateTarget(typ, target); err != nil {
			return nil, err
		}
	}

	shortcut, err := c.store.Update(c.ID, c.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update shortcut: %w", err)
	}

	return &UpdateResult{
		Shortcut: shortcut,
		Message:  fmt.Sprintf("Updated shortcut: %s", shortcut.Name),
	}, nil
}
