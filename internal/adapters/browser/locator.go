package browser

import (
	"os"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// candidate is a well-known browser with its conventional install paths
type candidate struct {
	id    string
	name  string
	paths []string
}

// Locator implements ports.BrowserLocator by probing well-known install
// locations, plus the Windows registry where available.
type Locator struct{}

// Ensure Locator implements the port
var _ ports.BrowserLocator = (*Locator)(nil)

// NewLocator creates a new browser locator
func NewLocator() *Locator {
	return &Locator{}
}

// Detect returns the installed browsers, de-duplicated by ID.
// Known-path probes come first so registry duplicates lose.
func (l *Locator) Detect() []domain.Browser {
	found := probeKnown()
	found = append(found, detectExtra()...)
	return domain.DedupeBrowsers(found)
}

// Resolve returns the executable path for a detected browser ID
func (l *Locator) Resolve(id string) string {
	for _, b := range l.Detect() {
		if b.ID == id {
			return b.Path
		}
	}
	return ""
}

// probeKnown checks each candidate's paths in order; the first path
// that exists wins for that browser.
func probeKnown() []domain.Browser {
	var found []domain.Browser
	for _, c := range knownBrowsers() {
		for _, path := range c.paths {
			if path == "" {
				continue
			}
			if _, err := os.Stat(path); err != nil {
				continue
			}
			found = append(found, domain.Browser{ID: c.id, Name: c.name, Path: path})
			break
		}
	}
	return found
}
