package ports

import "quicklaunch/internal/domain"

// BrowserLocator finds installed web browsers
type BrowserLocator interface {
	// Detect returns the installed browsers, de-duplicated by ID
	Detect() []domain.Browser

	// Resolve returns the executable path for a detected browser ID,
	// or "" when the ID is no longer present on the system.
	Resolve(id string) string
}
