package ports

import "quicklaunch/internal/domain"

// ShortcutIndex provides a derived search index over the store.
// The JSON document stays the source of truth; the index is a
// disposable cache rebuilt whenever it disagrees with the source.
type ShortcutIndex interface {
	// Lifecycle
	Open(dataPath string) error
	Close() error

	// NeedsFullRebuild reports whether the schema or source changed
	NeedsFullRebuild() bool

	// Sync replaces the indexed rows with the given shortcuts
	Sync(shortcuts []domain.Shortcut) error

	// Search matches query case-insensitively against name and target
	Search(query string) ([]domain.Shortcut, error)
}
