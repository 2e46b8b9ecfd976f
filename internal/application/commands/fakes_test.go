package commands

import (
	"fmt"
	"strings"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// fakeStore is an in-memory ShortcutStore for command tests
type fakeStore struct {
	shortcuts []domain.Shortcut
	settings  map[string]string
	nextID    int
}

func newFakeStore(shortcuts ...domain.Shortcut) *fakeStore {
	return &fakeStore{
		shortcuts: shortcuts,
		settings:  domain.DefaultSettings(),
	}
}

func (f *fakeStore) List(filter domain.Filter) ([]domain.Shortcut, error) {
	return domain.FilterShortcuts(f.shortcuts, filter), nil
}

func (f *fakeStore) Get(id string) (*domain.Shortcut, error) {
	for i := range f.shortcuts {
		if f.shortcuts[i].ID == id {
			s := f.shortcuts[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

func (f *fakeStore) Add(name string, typ domain.Type, target, gesture string) (*domain.Shortcut, error) {
	f.nextID++
	s := domain.Shortcut{
		ID:      fmt.Sprintf("id-%d", f.nextID),
		Name:    name,
		Type:    typ,
		Target:  target,
		Gesture: gesture,
	}
	f.shortcuts = append(f.shortcuts, s)
	return &s, nil
}

func (f *fakeStore) Update(id string, fields ports.ShortcutFields) (*domain.Shortcut, error) {
	for i := range f.shortcuts {
		if f.shortcuts[i].ID != id {
			continue
		}
		if fields.Name != nil {
			f.shortcuts[i].Name = *fields.Name
		}
		if fields.Type != nil {
			f.shortcuts[i].Type = *fields.Type
		}
		if fields.Target != nil {
			f.shortcuts[i].Target = *fields.Target
		}
		if fields.Gesture != nil {
			f.shortcuts[i].Gesture = *fields.Gesture
		}
		s := f.shortcuts[i]
		return &s, nil
	}
	return nil, fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

func (f *fakeStore) Delete(id string) error {
	for i := range f.shortcuts {
		if f.shortcuts[i].ID == id {
			f.shortcuts = append(f.shortcuts[:i], f.shortcuts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

func (f *fakeStore) Setting(key, fallback string) string {
	if v, ok := f.settings[key]; ok {
		return v
	}
	return fallback
}

func (f *fakeStore) SetSetting(key, value string) error {
	f.settings[key] = value
	return nil
}

func (f *fakeStore) Reload() error { return nil }

func (f *fakeStore) Path() string { return "fake://shortcuts.json" }

// fakeLauncher records launches instead of spawning processes
type fakeLauncher struct {
	launched []domain.Shortcut
	err      error
}

func (f *fakeLauncher) Launch(s domain.Shortcut) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.launched = append(f.launched, s)
	return fmt.Sprintf("Launching %s", s.Name), nil
}

// fakeIndex searches linearly, mimicking the SQLite adapter's matching
type fakeIndex struct {
	rows []domain.Shortcut
}

func (f *fakeIndex) Open(dataPath string) error { return nil }
func (f *fakeIndex) Close() error               { return nil }
func (f *fakeIndex) NeedsFullRebuild() bool     { return false }

func (f *fakeIndex) Sync(shortcuts []domain.Shortcut) error {
	f.rows = shortcuts
	return nil
}

func (f *fakeIndex) Search(query string) ([]domain.Shortcut, error) {
	q := strings.ToLower(query)
	var out []domain.Shortcut
	for _, s := range f.rows {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Target), q) {
			out = append(out, s)
		}
	}
	return out, nil
}
