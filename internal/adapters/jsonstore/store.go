package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// document is the on-disk shape of the shortcuts file
type document struct {
	Shortcuts []domain.Shortcut `json:"shortcuts"`
	Settings  map[string]string `json:"settings"`
}

// Store implements ports.ShortcutStore backed by a single JSON file.
// Single-process, single-writer: every mutation rewrites the whole file.
type Store struct {
	path string
	data document
}

// Ensure Store implements ShortcutStore
var _ ports.ShortcutStore = (*Store)(nil)

// NewStore creates a store for the given document path and loads it.
// A missing or unreadable document starts empty with default settings;
// the broken file is only replaced on the next save.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.data = load(path)
	return s
}

func load(path string) document {
	raw, err := os.ReadFile(path)
	if err != nil {
		return defaultDocument()
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return defaultDocument()
	}
	if doc.Shortcuts == nil {
		doc.Shortcuts = []domain.Shortcut{}
	}
	if doc.Settings == nil {
		doc.Settings = domain.DefaultSettings()
	}
	return doc
}

func defaultDocument() document {
	return document{
		Shortcuts: []domain.Shortcut{},
		Settings:  domain.DefaultSettings(),
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode shortcuts: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to save shortcuts: %w", err)
	}
	return nil
}

// List returns the shortcuts passing the filter, in stored order
func (s *Store) List(filter domain.Filter) ([]domain.Shortcut, error) {
	out := make([]domain.Shortcut, 0, len(s.data.Shortcuts))
	for _, sc := range s.data.Shortcuts {
		if filter.Matches(sc.Type) {
			out = append(out, sc)
		}
	}
	return out, nil
}

// Get returns the shortcut with the given ID
func (s *Store) Get(id string) (*domain.Shortcut, error) {
	for _, sc := range s.data.Shortcuts {
		if sc.ID == id {
			return &sc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

// Add creates a shortcut with a generated UUID and saves the document
func (s *Store) Add(name string, typ domain.Type, target, gesture string) (*domain.Shortcut, error) {
	shortcut := domain.Shortcut{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    typ,
		Target:  target,
		Gesture: gesture,
	}

	s.data.Shortcuts = append(s.data.Shortcuts, shortcut)
	if err := s.save(); err != nil {
		return nil, err
	}
	return &shortcut, nil
}

// Update applies the non-nil fields to the shortcut with the given ID
func (s *Store) Update(id string, fields ports.ShortcutFields) (*domain.Shortcut, error) {
	for i := range s.data.Shortcuts {
		if s.data.Shortcuts[i].ID != id {
			continue
		}

		sc := &s.data.Shortcuts[i]
		if fields.Name != nil {
			sc.Name = *fields.Name
		}
		if fields.Type != nil {
			sc.Type = *fields.Type
		}
		if fields.Target != nil {
			sc.Target = *fields.Target
		}
		if fields.Gesture != nil {
			sc.Gesture = *fields.Gesture
		}

		if err := s.save(); err != nil {
			return nil, err
		}
		updated := *sc
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

// Delete removes the shortcut with the given ID and saves the document
func (s *Store) Delete(id string) error {
	for i := range s.data.Shortcuts {
		if s.data.Shortcuts[i].ID == id {
			s.data.Shortcuts = append(s.data.Shortcuts[:i], s.data.Shortcuts[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", application.ErrNotFound, id)
}

// Setting returns a setting value, or fallback when unset
func (s *Store) Setting(key, fallback string) string {
	if v, ok := s.data.Settings[key]; ok {
		return v
	}
	return fallback
}

// SetSetting stores a setting value and saves the document
func (s *Store) SetSetting(key, value string) error {
	if s.data.Settings == nil {
		s.data.Settings = map[string]string{}
	}
	s.data.Settings[key] = value
	return s.save()
}

// Reload re-reads the document from disk, dropping in-memory state
func (s *Store) Reload() error {
	s.data = load(s.path)
	return nil
}

// Path returns the location of the backing document
func (s *Store) Path() string {
	return s.path
}
