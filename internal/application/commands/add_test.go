package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quicklaunch/internal/domain"
)

func TestAddCommand_Validate(t *testing.T) {
	dir := t.TempDir()
	program := filepath.Join(dir, "tool.bin")
	if err := os.WriteFile(program, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		shortcut string
		typ      domain.Type
		target   string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid program shortcut",
			shortcut: "Tool",
			typ:      domain.TypeProgram,
			target:   program,
		},
		{
			name:     "valid url shortcut",
			shortcut: "News",
			typ:      domain.TypeURL,
			target:   "https://example.com",
		},
		{
			name:     "empty name",
			shortcut: "",
			typ:      domain.TypeURL,
			target:   "https://example.com",
			wantErr:  true,
			errMsg:   "name is required",
		},
		{
			name:     "unknown type",
			shortcut: "Doc",
			typ:      domain.Type("document"),
			target:   program,
			wantErr:  true,
			errMsg:   "expected program, folder, or url",
		},
		{
			name:     "missing program file",
			shortcut: "Gone",
			typ:      domain.TypeProgram,
			target:   filepath.Join(dir, "missing.exe"),
			wantErr:  true,
			errMsg:   "program file does not exist",
		},
		{
			name:     "url without scheme",
			shortcut: "Bad",
			typ:      domain.TypeURL,
			target:   "example.com",
			wantErr:  true,
			errMsg:   "not a URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddCommand{
				Name:   tt.shortcut,
				Type:   tt.typ,
				Target: tt.target,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddCommand_Execute(t *testing.T) {
	store := newFakeStore()

	cmd := NewAddCommand(store, "News", domain.TypeURL, "https://example.com", "ctrl+1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Shortcut.ID == "" {
		t.Error("expected generated ID")
	}
	if result.Shortcut.Gesture != "ctrl+1" {
		t.Errorf("gesture not stored: %v", result.Shortcut)
	}
	if result.Message != "Added shortcut: News" {
		t.Errorf("unexpected message: %q", result.Message)
	}

	all, _ := store.List(domain.FilterAll)
	if len(all) != 1 {
		t.Errorf("expected 1 stored shortcut, got %d", len(all))
	}
}
