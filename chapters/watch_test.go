package chapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsChapterFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{path: "ch1.yaml", want: true},
		{path: "scripts/ch1.tengo", want: true},
		{path: "ch1.YAML", want: true},
		{path: "ch1.yml", want: true},
		{path: "notes.txt", want: false},
		{path: "ch1.yaml.swp", want: false},
	}
	for _, c := range cases {
		if got := isChapterFile(c.path); got != c.want {
			t.Fatalf("isChapterFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher("definitely_not_a_dir"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Receivers must observe end-of-stream rather than block forever.
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event after Close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Events channel never closed")
	}
	select {
	case _, ok := <-w.Errors:
		if ok {
			t.Fatalf("unexpected error after Close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Errors channel never closed")
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "aisle.yaml")
	if err := os.WriteFile(path, []byte("name: aisle\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name, ok := <-w.Events:
		if !ok {
			t.Fatalf("Events closed before any event")
		}
		if filepath.Base(name) != "aisle.yaml" {
			t.Fatalf("event for %q, want aisle.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for a chapter file edit")
	}
}

func TestWatcherDoubleClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
