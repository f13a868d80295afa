// Package journal appends entries to weekly note files.
//
// Each week runs Saturday through Friday and lives in one file named after
// its Friday. An invocation opens (or exclusively creates) that file, checks
// whether today's day header is already present, and writes all new content
// with a single write at the logical end of the file.
//
// The header scan and the final write are not guarded by a lock. Two
// invocations racing on the same existing file can both miss each other's
// day header and write it twice; each write still lands whole.
package journal

import (
	"log/slog"
	"time"

	"github.com/starford/journal/internal/models"
	"github.com/starford/journal/internal/storage"
)

// Result describes what a single Append did.
type Result struct {
	Path    string
	Created bool
	// DayAdded is true when this run wrote today's day header.
	DayAdded bool
	Bytes    int
}

// Writer appends entries to the week files of one note folder.
type Writer struct {
	store  *storage.FS
	logger *slog.Logger
}

// NewWriter creates a Writer over store.
func NewWriter(store *storage.FS, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{store: store, logger: logger}
}

// NoteName returns the week file name that now belongs to.
func (w *Writer) NoteName(now time.Time) string {
	return FileName(ThisFriday(now))
}

// Append adds e to the week file for now.
func (w *Writer) Append(now time.Time, e models.Entry) (res *Result, err error) {
	friday := ThisFriday(now)
	note, err := w.store.Open(FileName(friday))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := note.Close(); cerr != nil && err == nil {
			res, err = nil, cerr
		}
	}()

	st := fileState{New: note.Created()}
	var off int64
	if !st.New {
		size, err := note.Size()
		if err != nil {
			return nil, err
		}
		st.New = size == 0
	}
	if !st.New {
		if st.HasToday, err = note.HasLinePrefix(DayHeader(now)); err != nil {
			return nil, err
		}
		if off, err = note.ContentEnd(); err != nil {
			return nil, err
		}
	}

	buf := render(st, now, friday, e)
	w.logger.Debug("journal: appending",
		slog.String("path", note.Path()),
		slog.Bool("new_file", st.New),
		slog.Bool("has_today", st.HasToday),
		slog.Int64("offset", off),
		slog.Int("bytes", len(buf)))

	if err := note.WriteAt(buf, off); err != nil {
		return nil, err
	}
	return &Result{
		Path:     note.Path(),
		Created:  note.Created(),
		DayAdded: !st.HasToday,
		Bytes:    len(buf),
	}, nil
}
