package application

import (
	"fmt"
	"os"
	"strings"

	"quicklaunch/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateType checks that a shortcut type is one of program, folder, url
func ValidateType(fieldName string, typ domain.Type) error {
	if !typ.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected program, folder, or url, got: %s", typ),
		}
	}
	return nil
}

// ValidateTarget checks that a target is plausible for its type.
// Programs must point at an existing file, folders at an existing
// directory, URLs at something with a scheme separator.
func ValidateTarget(typ domain.Type, target string) error {
	if strings.TrimSpace(target) == "" {
		return &ValidationError{Field: "target", Message: "target is required"}
	}

	switch typ {
	case domain.TypeProgram:
		info, err := os.Stat(target)
		if err != nil || info.IsDir() {
			return &ValidationError{
				Field:   "target",
				Message: fmt.Sprintf("program file does not exist: %s", target),
			}
		}
	case domain.TypeFolder:
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			return &ValidationError{
				Field:   "target",
				Message: fmt.Sprintf("folder does not exist: %s", target),
			}
		}
	case domain.TypeURL:
		if !strings.Contains(target, "://") {
			return &ValidationError{
				Field:   "target",
				Message: fmt.Sprintf("not a URL: %s", target),
			}
		}
	}

	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "shortcutID" -> "shortcut ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"shortcutID": "shortcut ID",
		"name":       "name",
		"target":     "target",
		"query":      "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
