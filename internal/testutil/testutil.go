// Package testutil provides shared test helpers for note folders and clocks.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/journal/internal/storage"
)

// TestFolder creates a temporary note folder with a storage.FS over it.
func TestFolder(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// At returns a local time on the given date and clock time.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

// Clock returns a func reporting t, for injecting a fixed "now".
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ReadFile returns the content of name inside dir as a string.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
