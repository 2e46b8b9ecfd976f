package domain

// Type classifies what a shortcut launches
type Type string

const (
	TypeProgram Type = "program"
	TypeFolder  Type = "folder"
	TypeURL     Type = "url"
)

// ParseType parses a shortcut type string. Unknown values are returned
// as-is so records written by other tools survive a round-trip.
func ParseType(s string) Type {
	return Type(s)
}

// Valid reports whether the type is one of the known launch types
func (t Type) Valid() bool {
	switch t {
	case TypeProgram, TypeFolder, TypeURL:
		return true
	}
	return false
}

// String returns the wire representation of the type
func (t Type) String() string {
	return string(t)
}

// Shortcut is a single launchable entry in the store
type Shortcut struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	Target  string `json:"target"`
	Gesture string `json:"gesture"`
}

// Filter selects which shortcut types to show
type Filter string

const (
	FilterAll     Filter = "all"
	FilterProgram Filter = "program"
	FilterFolder  Filter = "folder"
	FilterURL     Filter = "url"
)

// Filters lists all filters in display order
var Filters = []Filter{FilterAll, FilterProgram, FilterFolder, FilterURL}

// ParseFilter parses a filter string, falling back to FilterAll
// for unknown values.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterProgram, FilterFolder, FilterURL:
		return Filter(s)
	default:
		return FilterAll
	}
}

// Matches reports whether a shortcut of the given type passes the filter
func (f Filter) Matches(t Type) bool {
	return f == FilterAll || Type(f) == t
}

// Next returns the filter after f in display order, wrapping around
func (f Filter) Next() Filter {
	for i, cur := range Filters {
		if cur == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// String returns the wire representation of the filter
func (f Filter) String() string {
	return string(f)
}

// FilterShortcuts returns the shortcuts passing the filter, in stored order
func FilterShortcuts(shortcuts []Shortcut, filter Filter) []Shortcut {
	if filter == FilterAll {
		return shortcuts
	}
	var out []Shortcut
	for _, s := range shortcuts {
		if filter.Matches(s.Type) {
			out = append(out, s)
		}
	}
	return out
}

// FindByName returns the shortcuts whose name matches exactly
func FindByName(shortcuts []Shortcut, name string) []Shortcut {
	var out []Shortcut
	for _, s := range shortcuts {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
