package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("shortcut not found")
	ErrEmptyTarget   = errors.New("shortcut target is empty")
	ErrAmbiguousName = errors.New("name matches more than one shortcut")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LaunchError represents a failed launch attempt
type LaunchError struct {
	Name   string
	Target string
	Reason string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s (%s): %s", e.Name, e.Target, e.Reason)
}
