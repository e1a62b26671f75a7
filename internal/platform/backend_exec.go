package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1broseidon/gridmove/internal/tools"
)

// activeTarget is the wmctrl token addressing the focused window.
const activeTarget = ":ACTIVE:"

// ToolPaths names the external binaries used by ExecBackend.
type ToolPaths struct {
	Enumerator string // xrandr
	Activator  string // xdotool getactivewindow
	Geometry   string // xwininfo
	Controller string // wmctrl
	KeySim     string // xdotool key
}

// ExecBackend implements Backend by shelling out to X11 command-line tools
// and scraping their text output.
type ExecBackend struct {
	runner tools.Runner
	paths  ToolPaths
	logger *slog.Logger
}

var _ Backend = (*ExecBackend)(nil)

// NewExecBackend creates a backend that runs paths through runner.
func NewExecBackend(runner tools.Runner, paths ToolPaths, logger *slog.Logger) *ExecBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecBackend{runner: runner, paths: paths, logger: logger}
}

// Displays parses the enumerator output. Whatever was printed is parsed even
// when the command failed.
func (b *ExecBackend) Displays(ctx context.Context) ([]Display, error) {
	res := b.runner.Run(ctx, b.paths.Enumerator)
	geoms := tools.ParseDisplays(res.Stdout)

	displays := make([]Display, 0, len(geoms))
	for i, g := range geoms {
		displays = append(displays, Display{
			ID:   i,
			Name: g.Name,
			Bounds: Rect{
				X:      g.X,
				Y:      g.Y,
				Width:  g.Width,
				Height: g.Height,
			},
		})
	}
	b.logger.Debug("enumerated displays", "count", len(displays))
	return displays, res.Err
}

func (b *ExecBackend) ActiveWindow(ctx context.Context) (WindowID, error) {
	res := b.runner.Run(ctx, b.paths.Activator, "getactivewindow")
	return WindowID(tools.ParseWindowID(res.Stdout)), res.Err
}

func (b *ExecBackend) WindowGeometry(ctx context.Context, id WindowID) (map[string]string, error) {
	res := b.runner.Run(ctx, b.paths.Geometry, "-id", string(id))
	return tools.ParseGeometry(res.Stdout), res.Err
}

func (b *ExecBackend) UnmaximizeActive(ctx context.Context) error {
	return b.runner.Run(ctx, b.paths.Controller, "-r", activeTarget, "-b", "remove,maximized_vert,maximized_horz").Err
}

// MoveResizeActive issues "-e gravity,x,y,w,h" with gravity 0.
func (b *ExecBackend) MoveResizeActive(ctx context.Context, bounds Rect) error {
	geometry := fmt.Sprintf("0,%d,%d,%d,%d", bounds.X, bounds.Y, bounds.Width, bounds.Height)
	return b.runner.Run(ctx, b.paths.Controller, "-r", activeTarget, "-e", geometry).Err
}

func (b *ExecBackend) SendKeys(ctx context.Context, combo string) error {
	return b.runner.Run(ctx, b.paths.KeySim, "key", combo).Err
}
