package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quicklaunch/internal/adapters/jsonstore"
	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// fakeLocator resolves a fixed browser table
type fakeLocator struct {
	browsers []domain.Browser
}

var _ ports.BrowserLocator = (*fakeLocator)(nil)

func (f *fakeLocator) Detect() []domain.Browser {
	return f.browsers
}

func (f *fakeLocator) Resolve(id string) string {
	for _, b := range f.browsers {
		if b.ID == id {
			return b.Path
		}
	}
	return ""
}

func testStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	return jsonstore.NewStore(filepath.Join(t.TempDir(), "shortcuts.json"))
}

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestLauncher_Command_Program(t *testing.T) {
	dir := t.TempDir()
	program := writeExecutable(t, dir, "tool")
	l := NewLauncher(testStore(t), &fakeLocator{})

	t.Run("existing program spawns directly", func(t *testing.T) {
		cmd, msg, err := l.Command(domain.Shortcut{Name: "Tool", Type: domain.TypeProgram, Target: program})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != program {
			t.Errorf("expected target as argv[0], got %v", cmd.Args)
		}
		if msg != "Launching Tool" {
			t.Errorf("unexpected message: %q", msg)
		}
	})

	t.Run("missing program", func(t *testing.T) {
		_, _, err := l.Command(domain.Shortcut{Name: "Gone", Type: domain.TypeProgram, Target: filepath.Join(dir, "gone")})
		var launchErr *application.LaunchError
		if !errors.As(err, &launchErr) {
			t.Fatalf("expected LaunchError, got %v", err)
		}
		if launchErr.Reason != "program not found" {
			t.Errorf("unexpected reason: %q", launchErr.Reason)
		}
	})

	t.Run("empty target", func(t *testing.T) {
		_, _, err := l.Command(domain.Shortcut{Name: "Empty", Type: domain.TypeProgram, Target: "   "})
		if !errors.Is(err, application.ErrEmptyTarget) {
			t.Errorf("expected ErrEmptyTarget, got %v", err)
		}
	})
}

func TestLauncher_Command_Folder(t *testing.T) {
	dir := t.TempDir()
	l := NewLauncher(testStore(t), &fakeLocator{})

	cmd, msg, err := l.Command(domain.Shortcut{Name: "Docs", Type: domain.TypeFolder, Target: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasArg(cmd.Args, dir) {
		t.Errorf("folder path missing from command: %v", cmd.Args)
	}
	if msg != "Opening Docs" {
		t.Errorf("unexpected message: %q", msg)
	}

	_, _, err = l.Command(domain.Shortcut{Name: "Gone", Type: domain.TypeFolder, Target: filepath.Join(dir, "gone")})
	var launchErr *application.LaunchError
	if !errors.As(err, &launchErr) || launchErr.Reason != "folder not found" {
		t.Errorf("expected folder-not-found LaunchError, got %v", err)
	}
}

func TestLauncher_Command_URL(t *testing.T) {
	dir := t.TempDir()
	firefox := writeExecutable(t, dir, "firefox")
	locator := &fakeLocator{browsers: []domain.Browser{
		{ID: "firefox", Name: "Mozilla Firefox", Path: firefox},
	}}
	shortcut := domain.Shortcut{Name: "News", Type: domain.TypeURL, Target: "https://example.com"}

	t.Run("auto uses system handler", func(t *testing.T) {
		store := testStore(t)
		l := NewLauncher(store, locator)

		cmd, _, err := l.Command(shortcut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasArg(cmd.Args, shortcut.Target) {
			t.Errorf("url missing from command: %v", cmd.Args)
		}
		if cmd.Args[0] == firefox {
			t.Error("auto should not pick a detected browser")
		}
	})

	t.Run("detected browser id", func(t *testing.T) {
		store := testStore(t)
		store.SetSetting(domain.SettingDefaultBrowser, "firefox")
		l := NewLauncher(store, locator)

		cmd, _, err := l.Command(shortcut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != firefox || !hasArg(cmd.Args, shortcut.Target) {
			t.Errorf("expected firefox invocation, got %v", cmd.Args)
		}
	})

	t.Run("unresolvable id falls back to system handler", func(t *testing.T) {
		store := testStore(t)
		store.SetSetting(domain.SettingDefaultBrowser, "vanished")
		l := NewLauncher(store, locator)

		cmd, _, err := l.Command(shortcut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasArg(cmd.Args, shortcut.Target) {
			t.Errorf("url missing from command: %v", cmd.Args)
		}
	})

	t.Run("custom browser path", func(t *testing.T) {
		custom := writeExecutable(t, dir, "mybrowser")
		store := testStore(t)
		store.SetSetting(domain.SettingDefaultBrowser, domain.BrowserCustom)
		store.SetSetting(domain.SettingCustomBrowserPath, custom)
		l := NewLauncher(store, locator)

		cmd, _, err := l.Command(shortcut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != custom {
			t.Errorf("expected custom browser, got %v", cmd.Args)
		}
	})

	t.Run("custom with missing path falls back", func(t *testing.T) {
		store := testStore(t)
		store.SetSetting(domain.SettingDefaultBrowser, domain.BrowserCustom)
		store.SetSetting(domain.SettingCustomBrowserPath, filepath.Join(dir, "gone"))
		l := NewLauncher(store, locator)

		cmd, _, err := l.Command(shortcut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasArg(cmd.Args, shortcut.Target) {
			t.Errorf("url missing from command: %v", cmd.Args)
		}
	})
}

func TestLauncher_Command_UnknownType(t *testing.T) {
	l := NewLauncher(testStore(t), &fakeLocator{})

	_, _, err := l.Command(domain.Shortcut{Name: "Odd", Type: domain.Type("document"), Target: "/tmp/x"})
	var launchErr *application.LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected LaunchError, got %v", err)
	}
}
