package browser

import (
	"os"
	"strings"
)

// ParseCommandPath extracts the executable path from a registry-style
// open command. Quoted commands keep everything up to the closing
// quote; unquoted commands take the first whitespace-separated field,
// which drops any trailing arguments like "%1".
func ParseCommandPath(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}
	if strings.HasPrefix(command, `"`) {
		rest := command[1:]
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	return strings.Fields(command)[0]
}

// ValidatePath reports whether path points to an existing browser
// executable.
func ValidatePath(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return isExecutable(path, info)
}
