package follow

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the follower goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func appendTo(t *testing.T, path, s string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.WriteString(s); err != nil {
		t.Fatal(err)
	}
}

func TestFollow_PrintsExistingThenAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-10-23 journal.md")
	appendTo(t, path, "# Journal\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- Follow(ctx, path, out, quietLogger()) }()

	eventually(t, 2*time.Second, 20*time.Millisecond, func() bool {
		return out.String() == "# Journal\n"
	}, "existing content not printed")

	appendTo(t, path, "entry\n")
	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return out.String() == "# Journal\nentry\n"
	}, "appended content not printed")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Follow: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Follow did not stop after cancel")
	}
}

func TestFollow_FileCreatedLater(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-10-30 journal.md")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	go Follow(ctx, path, out, quietLogger())
	time.Sleep(100 * time.Millisecond)

	appendTo(t, path, "# Journal for week ending at 2026-10-30\n")
	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return strings.Contains(out.String(), "week ending at 2026-10-30")
	}, "new file content not printed")
}

func TestFollow_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	go Follow(ctx, path, out, quietLogger())
	time.Sleep(100 * time.Millisecond)

	appendTo(t, filepath.Join(dir, "b.md"), "other\n")
	appendTo(t, path, "mine\n")
	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return out.String() == "mine\n"
	}, "expected only the followed file's content")
}
