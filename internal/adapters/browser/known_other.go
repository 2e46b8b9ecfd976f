//go:build !windows && !darwin

package browser

import "os/exec"

// knownBrowsers finds browsers on $PATH. LookPath misses produce empty
// paths, which the probe skips.
func knownBrowsers() []candidate {
	lookup := func(names ...string) []string {
		var paths []string
		for _, name := range names {
			if path, err := exec.LookPath(name); err == nil {
				paths = append(paths, path)
			}
		}
		return paths
	}

	return []candidate{
		{id: "chrome", name: "Google Chrome", paths: lookup("google-chrome", "google-chrome-stable", "chromium", "chromium-browser")},
		{id: "firefox", name: "Mozilla Firefox", paths: lookup("firefox")},
		{id: "edge", name: "Microsoft Edge", paths: lookup("microsoft-edge", "microsoft-edge-stable")},
		{id: "brave", name: "Brave", paths: lookup("brave-browser", "brave")},
		{id: "opera", name: "Opera", paths: lookup("opera")},
		{id: "vivaldi", name: "Vivaldi", paths: lookup("vivaldi", "vivaldi-stable")},
	}
}
