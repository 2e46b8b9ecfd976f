package browser

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestParseCommandPath(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{
			name:    "quoted with argument",
			command: `"C:\Program Files\Mozilla Firefox\firefox.exe" "%1"`,
			want:    `C:\Program Files\Mozilla Firefox\firefox.exe`,
		},
		{
			name:    "quoted without argument",
			command: `"C:\Program Files\Google\Chrome\Application\chrome.exe"`,
			want:    `C:\Program Files\Google\Chrome\Application\chrome.exe`,
		},
		{
			name:    "unquoted with argument",
			command: `C:\browsers\browser.exe %1`,
			want:    `C:\browsers\browser.exe`,
		},
		{
			name:    "unquoted without argument",
			command: `/usr/bin/firefox`,
			want:    `/usr/bin/firefox`,
		},
		{
			name:    "surrounding whitespace",
			command: `   "C:\b\b.exe" %1  `,
			want:    `C:\b\b.exe`,
		},
		{
			name:    "unterminated quote",
			command: `"C:\b\b.exe`,
			want:    `C:\b\b.exe`,
		},
		{
			name:    "empty",
			command: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCommandPath(tt.command); got != tt.want {
				t.Errorf("ParseCommandPath(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission-bit checks do not apply on windows")
	}

	dir := t.TempDir()

	executable := filepath.Join(dir, "browser")
	if err := os.WriteFile(executable, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(plain, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "executable file", path: executable, want: true},
		{name: "non-executable file", path: plain, want: false},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "gone"), want: false},
		{name: "empty", path: "", want: false},
		{name: "whitespace", path: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePath(tt.path); got != tt.want {
				t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
