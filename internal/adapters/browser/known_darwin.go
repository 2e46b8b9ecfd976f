//go:build darwin

package browser

// knownBrowsers returns the well-known macOS install locations
func knownBrowsers() []candidate {
	return []candidate{
		{
			id:   "chrome",
			name: "Google Chrome",
			paths: []string{
				"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			},
		},
		{
			id:   "firefox",
			name: "Mozilla Firefox",
			paths: []string{
				"/Applications/Firefox.app/Contents/MacOS/firefox",
			},
		},
		{
			id:   "edge",
			name: "Microsoft Edge",
			paths: []string{
				"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
			},
		},
		{
			id:   "brave",
			name: "Brave",
			paths: []string{
				"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
			},
		},
		{
			id:   "opera",
			name: "Opera",
			paths: []string{
				"/Applications/Opera.app/Contents/MacOS/Opera",
			},
		},
		{
			id:   "vivaldi",
			name: "Vivaldi",
			paths: []string{
				"/Applications/Vivaldi.app/Contents/MacOS/Vivaldi",
			},
		},
	}
}
