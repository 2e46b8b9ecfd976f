package ports

import "quicklaunch/internal/domain"

// ShortcutStore defines the interface for shortcut persistence.
// Every mutation is saved synchronously before the call returns.
type ShortcutStore interface {
	// List returns the shortcuts passing the filter, in stored order
	List(filter domain.Filter) ([]domain.Shortcut, error)

	// Get returns the shortcut with the given ID
	Get(id string) (*domain.Shortcut, error)

	// Add creates a shortcut with a generated ID and returns it
	Add(name string, typ domain.Type, target, gesture string) (*domain.Shortcut, error)

	// Update applies the non-nil fields to the shortcut with the given ID
	Update(id string, fields ShortcutFields) (*domain.Shortcut, error)

	// Delete removes the shortcut with the given ID
	Delete(id string) error

	// Setting returns a setting value, or fallback when unset
	Setting(key, fallback string) string

	// SetSetting stores a setting value
	SetSetting(key, value string) error

	// Reload re-reads the store from disk, dropping in-memory state
	Reload() error

	// Path returns the location of the backing document
	Path() string
}

// ShortcutFields holds the optional fields of a partial update.
// Nil pointers leave the stored value untouched.
type ShortcutFields struct {
	Name    *string
	Type    *domain.Type
	Target  *string
	Gesture *string
}
