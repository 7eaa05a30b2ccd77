package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/idilsaglam/todo/internal/cli"
	"github.com/idilsaglam/todo/internal/store/seedstore"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	seedPath := flag.String("seed", "", "YAML/JSON file with the starting list")
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log every dispatched action")
	flag.Parse()

	os.Exit(run(flag.Args(), *groupPending, *seedPath, *theme, *logPath, *debug))
}

func run(args []string, group bool, seedPath, theme, logPath string, debug bool) int {
	if !ui.SetTheme(theme) {
		ui.Fail(os.Stderr, "unknown theme: "+theme)
		return 2
	}

	logger, closeLog, err := newLogger(logPath, debug)
	if err != nil {
		ui.Fail(os.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	opt := cli.Options{Group: group, Logger: logger}
	if seedPath != "" {
		items, err := seedstore.LoadItems(seedPath)
		if err != nil {
			ui.Fail(os.Stderr, "seed: "+err.Error())
			return 1
		}
		opt.Seed = items
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(args, opt)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

// The TUI owns the terminal, so logs only ever go to a file.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}
