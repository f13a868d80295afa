package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/journal/internal"
	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/models"
	pkgconfig "github.com/starford/journal/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.DecodeOptional(cmd.String("config"), cfg); err != nil {
		return apperr.Config(err)
	}
	if folder := cmd.String("note-folder"); folder != "" {
		cfg.Journal.NoteFolder = folder
	}
	if cmd.Bool("time") {
		cfg.Journal.TimestampEntries = true
	}
	if cmd.Bool("verbose") {
		cfg.App.LogLevel = slog.LevelDebug
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	switch {
	case cmd.Bool("print-path"):
		path, err := internal.NotePath(opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.Writer, path)
		return err
	case cmd.Bool("follow"):
		return internal.Follow(ctx, cmd.Writer, opts...)
	case cmd.Bool("show"):
		return internal.Show(ctx, cmd.Writer, opts...)
	}

	entry := models.ParseMessage(cmd.Args().Slice())
	entry.Header = cmd.String("header")
	return internal.Run(ctx, entry, opts...)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "journal", "config.yaml")
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "journal",
		Usage:     "Append a line to this week's journal note",
		ArgsUsage: "[...] message words",
		Action:    run,
		Writer:    os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "header",
				Usage: "Start a new sub-section stamped with the current time",
			},
			&cli.BoolFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "Prefix the entry with the current time",
			},
			&cli.StringFlag{
				Name:    "note-folder",
				Usage:   "Absolute path of the folder holding weekly note files",
				Sources: cli.EnvVars("JOURNAL_NOTE_FOLDER"),
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to an optional config file",
				DefaultText: "<user config dir>/journal/config.yaml",
				Value:       defaultConfigPath(),
				Sources:     cli.EnvVars("JOURNAL_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "print-path",
				Usage: "Print the path of this week's note file and exit",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Print this week's note file",
			},
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "Print this week's note file and keep printing new entries",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("journal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
