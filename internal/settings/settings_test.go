package settings

import "testing"

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestThemeRoundTrip(t *testing.T) {
	s := openTemp(t)
	theme, err := s.Theme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != "" {
		t.Fatalf("fresh store theme = %q, want empty", theme)
	}
	if err := s.SetTheme("forest"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := s.SetTheme("dark"); err != nil {
		t.Fatalf("overwrite theme: %v", err)
	}
	theme, err = s.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if theme != "dark" {
		t.Fatalf("theme = %q, want dark", theme)
	}
}

func TestRecentOrderAndDedup(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"a.mmd", "b.mmd", "a.mmd"} {
		if err := s.Touch(p); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}
	got, err := s.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a.mmd" || got[1] != "b.mmd" {
		t.Fatalf("recent = %v", got)
	}
}

func TestRecentCap(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		if err := s.Touch(p); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != maxRecent || got[0] != "7" {
		t.Fatalf("recent = %v, want %d entries newest first", got, maxRecent)
	}
}
