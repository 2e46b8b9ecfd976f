package application

import "quicklaunch/internal/domain"

// Re-export domain types for use by adapters
type (
	Shortcut = domain.Shortcut
	Type     = domain.Type
	Filter   = domain.Filter
	Browser  = domain.Browser
)

const (
	TypeProgram = domain.TypeProgram
	TypeFolder  = domain.TypeFolder
	TypeURL     = domain.TypeURL

	FilterAll     = domain.FilterAll
	FilterProgram = domain.FilterProgram
	FilterFolder  = domain.FilterFolder
	FilterURL     = domain.FilterURL
)

// ParseType parses a shortcut type string
func ParseType(s string) Type {
	return domain.ParseType(s)
}

// ParseFilter parses a filter string, falling back to "all"
func ParseFilter(s string) Filter {
	return domain.ParseFilter(s)
}
