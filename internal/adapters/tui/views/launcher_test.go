package views

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/adapters/jsonstore"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// fakeRunner records launched shortcuts
type fakeRunner struct {
	launched []domain.Shortcut
}

var _ ports.Launcher = (*fakeRunner)(nil)

func (f *fakeRunner) Launch(sc domain.Shortcut) (string, error) {
	f.launched = append(f.launched, sc)
	return "Launching " + sc.Name, nil
}

func newTestLauncher(t *testing.T) (*LauncherModel, *jsonstore.Store, *fakeRunner) {
	t.Helper()
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "shortcuts.json"))
	runner := &fakeRunner{}
	return NewLauncherModel(store, runner), store, runner
}

func loadInto(t *testing.T, m *LauncherModel) {
	t.Helper()
	msg := m.loadShortcuts()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("failed to load shortcuts: %v", err.err)
	}
	m.Update(msg)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLauncherModel_FilterCyclePersists(t *testing.T) {
	m, store, _ := newTestLauncher(t)
	store.Add("Editor", domain.TypeProgram, "/usr/bin/vim", "")
	store.Add("News", domain.TypeURL, "https://example.com", "")
	loadInto(t, m)

	if len(m.visible) != 2 {
		t.Fatalf("expected 2 visible shortcuts, got %d", len(m.visible))
	}

	m.Update(keyRunes('f'))
	if m.filter != domain.FilterProgram {
		t.Errorf("expected program filter after one cycle, got %s", m.filter)
	}
	if len(m.visible) != 1 || m.visible[0].Name != "Editor" {
		t.Errorf("unexpected visible shortcuts: %+v", m.visible)
	}
	if got := store.Setting(domain.SettingLastFilter, ""); got != "program" {
		t.Errorf("filter not persisted, got %q", got)
	}
}

func TestLauncherModel_RunSelected(t *testing.T) {
	m, store, runner := newTestLauncher(t)
	store.Add("Editor", domain.TypeProgram, "/usr/bin/vim", "")
	loadInto(t, m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a run command")
	}
	msg := cmd()
	launched, ok := msg.(launchedMsg)
	if !ok {
		t.Fatalf("expected launchedMsg, got %T", msg)
	}
	if launched.message != "Launching Editor" {
		t.Errorf("unexpected message: %q", launched.message)
	}
	if len(runner.launched) != 1 || runner.launched[0].Name != "Editor" {
		t.Errorf("unexpected launches: %+v", runner.launched)
	}
}

func TestLauncherModel_GestureDispatch(t *testing.T) {
	m, store, runner := newTestLauncher(t)
	store.Add("Editor", domain.TypeProgram, "/usr/bin/vim", "x")
	store.Add("News", domain.TypeURL, "https://example.com", "")
	loadInto(t, m)

	// Move selection away from the gesture owner
	m.Update(keyRunes('j'))

	_, cmd := m.Update(keyRunes('x'))
	if cmd == nil {
		t.Fatal("expected gesture to dispatch a run command")
	}
	cmd()
	if len(runner.launched) != 1 || runner.launched[0].Name != "Editor" {
		t.Errorf("gesture launched the wrong shortcut: %+v", runner.launched)
	}
}

func TestLauncherModel_InlineSearch(t *testing.T) {
	m, store, _ := newTestLauncher(t)
	store.Add("Editor", domain.TypeProgram, "/usr/bin/vim", "")
	store.Add("Downloads", domain.TypeFolder, "/home/me/Downloads", "")
	loadInto(t, m)

	m.Update(keyRunes('/'))
	if !m.searching {
		t.Fatal("expected search mode")
	}

	m.Update(keyRunes('d'))
	m.Update(keyRunes('o'))
	m.Update(keyRunes('w'))
	if len(m.visible) != 1 || m.visible[0].Name != "Downloads" {
		t.Errorf("unexpected search results: %+v", m.visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.searching || len(m.visible) != 2 {
		t.Errorf("escape should clear the search, got %d visible", len(m.visible))
	}
}

func TestLauncherModel_StartsFromPersistedFilter(t *testing.T) {
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "shortcuts.json"))
	store.SetSetting(domain.SettingLastFilter, "url")

	m := NewLauncherModel(store, &fakeRunner{})
	if m.filter != domain.FilterURL {
		t.Errorf("expected url filter from settings, got %s", m.filter)
	}
}
