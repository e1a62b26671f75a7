package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/gridmove/internal/config"
	"github.com/1broseidon/gridmove/internal/platform"
	"github.com/1broseidon/gridmove/internal/snap"
	"github.com/1broseidon/gridmove/internal/tools"
)

var newBackendFn = newBackend

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, closeLog := newLogger(cfg, opts.verbose, stderr)
	defer closeLog()

	backend, closeBackend, err := newBackendFn(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize backend", "backend", cfg.Backend, "error", err)
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeBackend()

	if opts.list {
		return listDisplays(ctx, backend, stdout, logger)
	}

	if opts.dryRun {
		backend = platform.NewDryRunBackend(backend, stdout)
	}

	mover := snap.NewMover(backend, logger)
	mover.RestoreSnap = cfg.RestoreSnap
	mover.Keys = snap.SnapKeys{Left: cfg.SnapKeys.Left, Right: cfg.SnapKeys.Right}

	report, err := mover.Move(ctx, opts.display, opts.position)
	if err != nil {
		logger.Error("move failed", "error", err)
		return 1
	}
	if report.Skipped {
		return 0
	}
	logger.Info("moved active window",
		"display", *opts.display,
		"position", opts.position.String(),
		"target", report.Target.String(),
		"failed_steps", len(report.Failed()))
	return 0
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		res *config.LoadResult
		err error
	)
	if opts.configPath != "" {
		res, err = config.LoadFromPath(opts.configPath)
	} else {
		res, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg := res.Config
	if opts.backend != "" {
		cfg.Backend = opts.backend
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("-backend: %w", err)
		}
	}
	return cfg, nil
}

func newBackend(cfg *config.Config, logger *slog.Logger) (platform.Backend, func(), error) {
	env := tools.SessionEnv{Display: cfg.Display, XAuthority: cfg.XAuthority}

	switch cfg.Backend {
	case config.BackendX11:
		if err := env.ApplyToProcess(); err != nil {
			return nil, nil, err
		}
		b, err := platform.NewX11Backend("")
		if err != nil {
			return nil, nil, err
		}
		return b, b.Disconnect, nil
	default:
		runner := tools.NewExecRunner(logger, env)
		b := platform.NewExecBackend(runner, platform.ToolPaths{
			Enumerator: cfg.Tools.Enumerator,
			Activator:  cfg.Tools.Activator,
			Geometry:   cfg.Tools.Geometry,
			Controller: cfg.Tools.Controller,
			KeySim:     cfg.Tools.KeySim,
		}, logger)
		return b, func() {}, nil
	}
}

func listDisplays(ctx context.Context, backend platform.Backend, w io.Writer, logger *slog.Logger) int {
	displays, err := backend.Displays(ctx)
	if err != nil {
		logger.Warn("display enumeration reported an error", "error", err)
	}
	for _, d := range displays {
		name := d.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%dx%d+%d+%d\n", d.ID, name, d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y)
	}
	return 0
}
