// Package follow streams content appended to a note file.
package follow

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/journal/internal/apperr"
)

// Follow writes the current content of path to out, then keeps writing
// whatever is added to it until ctx is cancelled. The file does not need to
// exist yet; its directory is watched so the first write is picked up.
//
// Appends that rewrite the file's trailing newline (continuations) are
// reported from the previously seen length, so a joined continuation shows
// up on its own line.
func Follow(ctx context.Context, path string, out io.Writer, logger *slog.Logger) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return apperr.FS("watch", path, err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return apperr.FS("watch", dir, err)
	}
	logger.Info("follow: started", slog.String("path", path))

	t := &tail{path: path, out: out}
	if err := t.emit(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("follow: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				if err := t.emit(); err != nil {
					return err
				}
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				logger.Debug("follow: file went away", slog.String("path", path))
				t.seen = 0
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("follow: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

type tail struct {
	path string
	out  io.Writer
	seen int64
}

// emit writes everything past the last seen length. A shrunken file is
// printed again from the start.
func (t *tail) emit() error {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return apperr.FS("read", t.path, err)
	}
	size := int64(len(data))
	if size < t.seen {
		t.seen = 0
	}
	if size == t.seen {
		return nil
	}
	if _, err := t.out.Write(data[t.seen:]); err != nil {
		return apperr.FS("write", "output", err)
	}
	t.seen = size
	return nil
}
