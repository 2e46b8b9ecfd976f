//go:build windows

package browser

import (
	"os"
	"path/filepath"
	"strings"
)

// isExecutable accepts the launchable extensions Windows shells run
func isExecutable(path string, _ os.FileInfo) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd":
		return true
	}
	return false
}
