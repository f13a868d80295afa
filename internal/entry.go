// Package internal provides the application setup and the journal commands.
package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/follow"
	"github.com/starford/journal/internal/journal"
	"github.com/starford/journal/internal/models"
	"github.com/starford/journal/internal/storage"
)

// newApplication applies opts, validates the configuration and makes sure
// the note folder exists. Nothing touches the file system before the
// configuration is known to be valid.
func newApplication(opts ...Option) (*application, *storage.FS, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, nil, apperr.Config(errors.New("config is required"))
	}
	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return nil, nil, apperr.Config(err)
	}

	if app.now == nil {
		app.now = time.Now
	}
	if app.logger == nil {
		app.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
	}

	app.logger.Debug("Configuration loaded",
		slog.String("note_folder", cfg.Journal.NoteFolder),
		slog.Bool("timestamp_entries", cfg.Journal.TimestampEntries),
		slog.String("log_level", cfg.App.LogLevel.String()))

	if err := os.MkdirAll(cfg.Journal.NoteFolder, 0o755); err != nil {
		return nil, nil, apperr.FS("create folder", cfg.Journal.NoteFolder, err)
	}
	store, err := storage.NewFS(cfg.Journal.NoteFolder)
	if err != nil {
		return nil, nil, err
	}
	app.logger.Debug("Note folder ready", slog.String("root", store.Root()))
	return app, store, nil
}

// Run appends entry to the current week's note file.
func Run(_ context.Context, entry models.Entry, opts ...Option) error {
	app, store, err := newApplication(opts...)
	if err != nil {
		return err
	}
	if app.config.Journal.TimestampEntries {
		entry.Timestamped = true
	}
	if entry.Empty() {
		app.logger.Info("No message or header given, only ensuring today's day header")
	}

	res, err := journal.NewWriter(store, app.logger).Append(app.now(), entry)
	if err != nil {
		return err
	}
	app.logger.Info("Entry written",
		slog.String("path", res.Path),
		slog.Bool("created", res.Created),
		slog.Bool("day_added", res.DayAdded),
		slog.Int("bytes", res.Bytes))
	return nil
}

// NotePath returns the absolute path of the current week's note file.
func NotePath(opts ...Option) (string, error) {
	app, store, err := newApplication(opts...)
	if err != nil {
		return "", err
	}
	return store.Path(journal.NewWriter(store, app.logger).NoteName(app.now()))
}

// Show writes the current week's note file to out. A week without a file
// yet prints nothing.
func Show(_ context.Context, out io.Writer, opts ...Option) error {
	app, store, err := newApplication(opts...)
	if err != nil {
		return err
	}
	data, err := store.Read(journal.NewWriter(store, app.logger).NoteName(app.now()))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return apperr.FS("write", "output", err)
	}
	return nil
}

// Follow prints the current week's note file and keeps printing appended
// content until ctx is cancelled or the process is interrupted.
func Follow(ctx context.Context, out io.Writer, opts ...Option) error {
	app, store, err := newApplication(opts...)
	if err != nil {
		return err
	}
	path, err := store.Path(journal.NewWriter(store, app.logger).NoteName(app.now()))
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	followCtx, stop := context.WithCancel(gCtx)
	defer stop()

	g.Go(func() error {
		defer stop()
		return follow.Follow(followCtx, path, out, app.logger)
	})

	// Handle interrupt signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			app.logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			stop()
		case <-followCtx.Done():
		}
		return nil
	})

	return g.Wait()
}
