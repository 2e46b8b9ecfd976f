package domain

// Browser is an installed web browser found by detection
type Browser struct {
	ID   string // stable identifier, e.g. "chrome"
	Name string // display name, e.g. "Google Chrome"
	Path string // path to the executable
}

// DedupeBrowsers removes entries with a previously seen ID,
// preserving first-seen order.
func DedupeBrowsers(browsers []Browser) []Browser {
	seen := make(map[string]bool, len(browsers))
	var out []Browser
	for _, b := range browsers {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	return out
}
