package config

import (
	"os"
	"path/filepath"
)

// DataPath returns the shortcuts document path from the QUICKLAUNCH_DATA
// env var, falling back to <user config dir>/quicklaunch/shortcuts.json.
func DataPath() string {
	if env := os.Getenv("QUICKLAUNCH_DATA"); env != "" {
		return env
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "quicklaunch", "shortcuts.json")
}
