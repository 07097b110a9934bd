package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRelevant(t *testing.T) {
	cases := map[string]bool{
		"hero.anim":       true,
		"hero.TXT":        true,
		"sheets/hero.png": true,
		"gen/walk.tengo":  true,
		"animake.yaml":    false,
		"hero.anim.swp":   false,
		"no_extension":    false,
	}
	for path, want := range cases {
		if got := Relevant(path); got != want {
			t.Errorf("Relevant(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsCatalogWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "hero.anim")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) == ".md" {
				t.Fatalf("irrelevant file reported: %s", name)
			}
			if name == target {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatalf("no event for %s", target)
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestSuppressor(t *testing.T) {
	now := time.Unix(100, 0)
	s := NewSuppressor()
	s.now = func() time.Time { return now }

	s.Ignore("dir/../hero.anim", time.Second)
	if s.Allow("hero.anim") {
		t.Fatalf("own write not suppressed")
	}
	if !s.Allow("other.anim") {
		t.Fatalf("unrelated path suppressed")
	}
	now = now.Add(2 * time.Second)
	if !s.Allow("hero.anim") {
		t.Fatalf("suppression did not expire")
	}
}
