//go:build windows

package browser

import (
	"os"
	"path/filepath"
)

// knownBrowsers returns the well-known Windows install locations.
// Paths under an unset environment root are left empty and skipped.
func knownBrowsers() []candidate {
	programFiles := os.Getenv("PROGRAMFILES")
	programFilesX86 := os.Getenv("PROGRAMFILES(X86)")
	localAppData := os.Getenv("LOCALAPPDATA")

	join := func(root string, parts ...string) string {
		if root == "" {
			return ""
		}
		return filepath.Join(append([]string{root}, parts...)...)
	}

	return []candidate{
		{
			id:   "chrome",
			name: "Google Chrome",
			paths: []string{
				join(programFiles, "Google", "Chrome", "Application", "chrome.exe"),
				join(programFilesX86, "Google", "Chrome", "Application", "chrome.exe"),
				join(localAppData, "Google", "Chrome", "Application", "chrome.exe"),
			},
		},
		{
			id:   "firefox",
			name: "Mozilla Firefox",
			paths: []string{
				join(programFiles, "Mozilla Firefox", "firefox.exe"),
				join(programFilesX86, "Mozilla Firefox", "firefox.exe"),
			},
		},
		{
			id:   "edge",
			name: "Microsoft Edge",
			paths: []string{
				join(programFilesX86, "Microsoft", "Edge", "Application", "msedge.exe"),
				join(programFiles, "Microsoft", "Edge", "Application", "msedge.exe"),
			},
		},
		{
			id:   "brave",
			name: "Brave",
			paths: []string{
				join(localAppData, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
				join(programFiles, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
			},
		},
		{
			id:   "opera",
			name: "Opera",
			paths: []string{
				join(localAppData, "Programs", "Opera", "launcher.exe"),
				join(programFiles, "Opera", "launcher.exe"),
			},
		},
		{
			id:   "vivaldi",
			name: "Vivaldi",
			paths: []string{
				join(localAppData, "Vivaldi", "Application", "vivaldi.exe"),
				join(programFiles, "Vivaldi", "Application", "vivaldi.exe"),
			},
		},
	}
}
