package browser

import "testing"

func TestLocator_Detect_Dedupes(t *testing.T) {
	l := NewLocator()

	seen := make(map[string]bool)
	for _, b := range l.Detect() {
		if b.ID == "" || b.Name == "" || b.Path == "" {
			t.Errorf("incomplete browser entry: %+v", b)
		}
		if seen[b.ID] {
			t.Errorf("duplicate browser ID %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestLocator_Resolve_Unknown(t *testing.T) {
	l := NewLocator()
	if got := l.Resolve("no-such-browser"); got != "" {
		t.Errorf("expected empty path for unknown ID, got %q", got)
	}
}
