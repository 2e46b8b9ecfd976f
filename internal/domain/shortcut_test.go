package domain

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Filter
	}{
		{"all", "all", FilterAll},
		{"program", "program", FilterProgram},
		{"folder", "folder", FilterFolder},
		{"url", "url", FilterURL},
		{"unknown falls back to all", "registry", FilterAll},
		{"empty falls back to all", "", FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFilter(tt.input); got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		typ    Type
		want   bool
	}{
		{"all matches program", FilterAll, TypeProgram, true},
		{"all matches url", FilterAll, TypeURL, true},
		{"program matches program", FilterProgram, TypeProgram, true},
		{"program rejects folder", FilterProgram, TypeFolder, false},
		{"url rejects unknown type", FilterURL, Type("document"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.typ); got != tt.want {
				t.Errorf("%q.Matches(%q) = %v, want %v", tt.filter, tt.typ, got, tt.want)
			}
		})
	}
}

func TestFilterNext(t *testing.T) {
	order := []Filter{FilterAll, FilterProgram, FilterFolder, FilterURL, FilterAll}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%q.Next() = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestFilterShortcuts(t *testing.T) {
	shortcuts := []Shortcut{
		{ID: "1", Name: "Notepad", Type: TypeProgram, Target: `C:\Windows\notepad.exe`},
		{ID: "2", Name: "Downloads", Type: TypeFolder, Target: `C:\Users\me\Downloads`},
		{ID: "3", Name: "News", Type: TypeURL, Target: "https://example.com"},
		{ID: "4", Name: "Calc", Type: TypeProgram, Target: `C:\Windows\calc.exe`},
	}

	t.Run("all preserves stored order", func(t *testing.T) {
		got := FilterShortcuts(shortcuts, FilterAll)
		if len(got) != 4 {
			t.Fatalf("expected 4 shortcuts, got %d", len(got))
		}
		if got[0].ID != "1" || got[3].ID != "4" {
			t.Errorf("order not preserved: %v", got)
		}
	})

	t.Run("program filter", func(t *testing.T) {
		got := FilterShortcuts(shortcuts, FilterProgram)
		if len(got) != 2 {
			t.Fatalf("expected 2 programs, got %d", len(got))
		}
		if got[0].Name != "Notepad" || got[1].Name != "Calc" {
			t.Errorf("unexpected programs: %v", got)
		}
	})

	t.Run("no matches returns empty", func(t *testing.T) {
		got := FilterShortcuts([]Shortcut{shortcuts[0]}, FilterURL)
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", got)
		}
	})
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeProgram, TypeFolder, TypeURL} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	for _, typ := range []Type{"", "document", "ALL"} {
		if typ.Valid() {
			t.Errorf("%q should not be valid", typ)
		}
	}
}

func TestFindByName(t *testing.T) {
	shortcuts := []Shortcut{
		{ID: "1", Name: "Mail"},
		{ID: "2", Name: "News"},
		{ID: "3", Name: "Mail"},
	}

	if got := FindByName(shortcuts, "News"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("FindByName(News) = %v", got)
	}
	if got := FindByName(shortcuts, "Mail"); len(got) != 2 {
		t.Errorf("expected 2 matches for Mail, got %d", len(got))
	}
	if got := FindByName(shortcuts, "mail"); len(got) != 0 {
		t.Errorf("name match is case sensitive, got %v", got)
	}
}

func TestDedupeBrowsers(t *testing.T) {
	browsers := []Browser{
		{ID: "chrome", Name: "Google Chrome", Path: "/a/chrome"},
		{ID: "firefox", Name: "Mozilla Firefox", Path: "/a/firefox"},
		{ID: "chrome", Name: "Google Chrome (registry)", Path: "/b/chrome"},
	}

	got := DedupeBrowsers(browsers)
	if len(got) != 2 {
		t.Fatalf("expected 2 browsers, got %d", len(got))
	}
	if got[0].Path != "/a/chrome" {
		t.Errorf("first-seen entry should win, got %v", got[0])
	}
}
