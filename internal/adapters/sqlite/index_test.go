package sqlite

import (
	"path/filepath"
	"testing"

	"quicklaunch/internal/domain"
)

func openTestIndex(t *testing.T, dataPath string) *Index {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	idx := NewIndex()
	if err := idx.Open(dataPath); err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndex_SyncAndSearch(t *testing.T) {
	idx := openTestIndex(t, filepath.Join(t.TempDir(), "shortcuts.json"))

	shortcuts := []domain.Shortcut{
		{ID: "1", Name: "Editor", Type: domain.TypeProgram, Target: "/opt/editor"},
		{ID: "2", Name: "Downloads", Type: domain.TypeFolder, Target: "/home/me/dl"},
		{ID: "3", Name: "News", Type: domain.TypeURL, Target: "https://news.example.com", Gesture: "ctrl+1"},
	}
	if err := idx.Sync(shortcuts); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "match by name", query: "editor", wantIDs: []string{"1"}},
		{name: "match by target", query: "news.example", wantIDs: []string{"3"}},
		{name: "case insensitive", query: "DOWNLOADS", wantIDs: []string{"2"}},
		{name: "multiple ordered by name", query: "e", wantIDs: []string{"2", "1", "3"}},
		{name: "no match", query: "zzz", wantIDs: nil},
		{name: "wildcard treated literally", query: "%", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Search(tt.query)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d results, got %d: %+v", len(tt.wantIDs), len(got), got)
			}
			for i, sc := range got {
				if sc.ID != tt.wantIDs[i] {
					t.Errorf("result %d: expected ID %s, got %s", i, tt.wantIDs[i], sc.ID)
				}
			}
		})
	}

	t.Run("gesture survives round trip", func(t *testing.T) {
		got, err := idx.Search("news")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Gesture != "ctrl+1" {
			t.Errorf("unexpected result: %+v", got)
		}
	})
}

func TestIndex_SyncReplaces(t *testing.T) {
	idx := openTestIndex(t, filepath.Join(t.TempDir(), "shortcuts.json"))

	if err := idx.Sync([]domain.Shortcut{
		{ID: "1", Name: "Old", Type: domain.TypeProgram, Target: "/bin/old"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := idx.Sync([]domain.Shortcut{
		{ID: "2", Name: "New", Type: domain.TypeProgram, Target: "/bin/new"},
	}); err != nil {
		t.Fatal(err)
	}

	if got, _ := idx.Search("old"); len(got) != 0 {
		t.Errorf("stale rows survived sync: %+v", got)
	}
	got, err := idx.Search("new")
	if err != nil || len(got) != 1 {
		t.Errorf("expected replacement row, got %v (%v)", got, err)
	}
}

func TestIndex_NeedsFullRebuild(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "shortcuts.json")
	idx := openTestIndex(t, dataPath)

	if idx.NeedsFullRebuild() {
		t.Error("freshly opened index should not need a rebuild")
	}

	// A different data path hashes to a different database file, so the
	// meta written there matches its own path too.
	idx.dataPath = dataPath + ".other"
	if !idx.NeedsFullRebuild() {
		t.Error("expected rebuild when the data path changes under the index")
	}
}
