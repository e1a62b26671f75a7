package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/1broseidon/gridmove/internal/config"
	"golang.org/x/term"
)

// newLogger picks the log destination: the configured log_file, stderr on an
// interactive terminal, otherwise the state log file (hotkey launches have no
// visible stderr).
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, func()) {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	out := stderr
	cleanup := func() {}

	path := cfg.LogFile
	if path == "" && !isTerminal(stderr) {
		if p, err := config.DefaultLogPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if f, err := openLogFile(path); err == nil {
			out = f
			cleanup = func() { f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, cleanup
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
