package ports

import "quicklaunch/internal/domain"

// Launcher dispatches a shortcut to the matching OS launch action
type Launcher interface {
	// Launch starts the shortcut's target and returns a short
	// announcement ("Launching X", "Opening X") on success.
	Launch(shortcut domain.Shortcut) (string, error)
}
