package metadata

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dshills/valuekit/logging"
	"github.com/dshills/valuekit/observe"
)

func writeDescriptor(t *testing.T, path, version string) {
	t.Helper()
	doc := "name = \"proj\"\nversion = \"" + version + "\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	writeDescriptor(t, path, "1.0.0")

	w, err := NewWatcher(path, WithLogger(logging.NullLogger))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	if got := w.Current().Version; got != "1.0.0" {
		t.Errorf("Current().Version = %q, want %q", got, "1.0.0")
	}
}

func TestNewWatcher_MissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("NewWatcher of missing file did not fail")
	}
}

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	writeDescriptor(t, path, "1.0.0")

	w, err := NewWatcher(path, WithLogger(logging.NullLogger))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	var reloads atomic.Int32
	w.OnReload(func(c observe.Change[Descriptor]) {
		reloads.Add(1)
	})

	writeDescriptor(t, path, "2.0.0")

	deadline := time.Now().Add(5 * time.Second)
	for w.Current().Version != "2.0.0" {
		if time.Now().After(deadline) {
			t.Fatalf("descriptor not reloaded; version = %q", w.Current().Version)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if reloads.Load() == 0 {
		t.Error("no reload notification delivered")
	}
}

func TestWatcher_BadReloadKeepsCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	writeDescriptor(t, path, "1.0.0")

	w, err := NewWatcher(path, WithLogger(logging.NullLogger))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	// Write a descriptor missing required fields; the watcher must keep
	// the last good one.
	if err := os.WriteFile(path, []byte("name = \"proj\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if got := w.Current().Version; got != "1.0.0" {
		t.Errorf("Current().Version = %q, want last good %q", got, "1.0.0")
	}
}

func TestWatcher_CloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	writeDescriptor(t, path, "1.0.0")

	w, err := NewWatcher(path, WithLogger(logging.NullLogger))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
}
