package commands

import (
	"context"
	"errors"
	"fmt"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// RunResult contains the result of launching a shortcut
type RunResult struct {
	Shortcut *domain.Shortcut
	Message  string
}

// RunCommand resolves a shortcut reference and launches it.
// The reference is tried as an ID first, then as a display name;
// a name matching more than one shortcut is an error.
type RunCommand struct {
	store    ports.ShortcutStore
	launcher ports.Launcher
	Ref      string
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(store ports.ShortcutStore, launcher ports.Launcher, ref string) *RunCommand {
	return &RunCommand{
		store:    store,
		launcher: launcher,
		Ref:      ref,
	}
}

// Validate checks if the run operation is valid
func (c *RunCommand) Validate() error {
	return application.ValidateRequired("shortcutID", c.Ref)
}

// Execute resolves the reference and dispatches the launch
func (c *RunCommand) Execute(ctx context.Context) (*RunResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	shortcut, err := c.resolve()
	if err != nil {
		return nil, err
	}

	message, err := c.launcher.Launch(*shortcut)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		Shortcut: shortcut,
		Message:  message,
	}, nil
}

func (c *RunCommand) resolve() (*domain.Shortcut, error) {
	shortcut, err := c.store.Get(c.Ref)
	if err == nil {
		return shortcut, nil
	}
	if !errors.Is(err, application.ErrNotFound) {
		return nil, err
	}

	all, err := c.store.List(domain.FilterAll)
	if err != nil {
		return nil, err
	}

	matches := domain.FindByName(all, c.Ref)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", application.ErrNotFound, c.Ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", application.ErrAmbiguousName, c.Ref)
	}
}
