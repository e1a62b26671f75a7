// Package snap moves the active window onto one half of a display.
package snap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/gridmove/internal/platform"
	"github.com/1broseidon/gridmove/internal/tiling"
)

// ErrDisplayOutOfRange is returned when the index passed validation but does
// not name an enumerated display (index == number of displays).
var ErrDisplayOutOfRange = errors.New("display index out of range")

// Step names recorded in a Report.
const (
	StepDisplays     = "displays"
	StepActiveWindow = "active-window"
	StepGeometry     = "window-geometry"
	StepUnmaximize   = "unmaximize"
	StepMoveResize   = "move-resize"
	StepSnapKeys     = "snap-keys"
)

// SnapKeys are the key combinations replayed after the resize so the
// desktop's own half-tiling keeps the window vertically maximized.
type SnapKeys struct {
	Left  string
	Right string
}

// DefaultSnapKeys matches the GNOME/Cinnamon/KDE defaults.
func DefaultSnapKeys() SnapKeys {
	return SnapKeys{Left: "super+Left", Right: "super+Right"}
}

func (k SnapKeys) For(pos platform.Position) string {
	if pos == platform.Right {
		return k.Right
	}
	return k.Left
}

// StepResult records one backend call. Err is informational.
type StepResult struct {
	Name string
	Err  error
}

// Report describes what Move did.
type Report struct {
	Skipped  bool
	Displays []platform.Display
	Window   platform.WindowID
	Geometry map[string]string
	Target   *platform.Rect
	Steps    []StepResult
}

// Failed returns the steps whose backend call reported an error.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Ran reports whether a step with the given name was attempted.
func (r *Report) Ran(name string) bool {
	for _, s := range r.Steps {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Mover runs the snap sequence against a backend.
type Mover struct {
	Backend     platform.Backend
	Logger      *slog.Logger
	Keys        SnapKeys
	RestoreSnap bool
}

// NewMover returns a Mover with default snap keys and snap restoration on.
func NewMover(backend platform.Backend, logger *slog.Logger) *Mover {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mover{
		Backend:     backend,
		Logger:      logger,
		Keys:        DefaultSnapKeys(),
		RestoreSnap: true,
	}
}

// Move snaps the active window to the pos half of display displayIndex.
//
// A nil, negative or too large index makes Move return without touching the
// window. Note the upper bound: an index equal to the number of displays is
// accepted by validation, so the unmaximize request is still sent before
// ErrDisplayOutOfRange is returned.
//
// Backend failures are recorded in the report and logged; they never stop
// the sequence.
func (m *Mover) Move(ctx context.Context, displayIndex *int, pos platform.Position) (*Report, error) {
	report := &Report{}

	displays, err := m.Backend.Displays(ctx)
	m.record(report, StepDisplays, err)
	report.Displays = displays

	if displayIndex == nil || *displayIndex < 0 || *displayIndex > len(displays) {
		m.Logger.Debug("display index not usable, nothing to do", "index", fmtIndex(displayIndex), "displays", len(displays))
		report.Skipped = true
		return report, nil
	}
	index := *displayIndex

	// The window origin is informational only; placement never depends on it.
	window, err := m.Backend.ActiveWindow(ctx)
	m.record(report, StepActiveWindow, err)
	report.Window = window
	geometry, err := m.Backend.WindowGeometry(ctx, window)
	m.record(report, StepGeometry, err)
	report.Geometry = geometry
	m.Logger.Debug("active window", "id", string(window), "x", geometry["X"], "y", geometry["Y"])

	m.record(report, StepUnmaximize, m.Backend.UnmaximizeActive(ctx))

	if index >= len(displays) {
		return report, fmt.Errorf("%w: index %d, %d display(s)", ErrDisplayOutOfRange, index, len(displays))
	}

	target := tiling.HalfRect(displays[index].Bounds, pos)
	report.Target = &target
	m.Logger.Debug("moving active window", "display", index, "position", pos.String(), "target", target.String())
	m.record(report, StepMoveResize, m.Backend.MoveResizeActive(ctx, target))

	if m.RestoreSnap {
		if combo := m.Keys.For(pos); combo != "" {
			m.record(report, StepSnapKeys, m.Backend.SendKeys(ctx, combo))
		}
	}

	return report, nil
}

func (m *Mover) record(report *Report, step string, err error) {
	report.Steps = append(report.Steps, StepResult{Name: step, Err: err})
	if err != nil {
		m.Logger.Warn("step failed, continuing", "step", step, "error", err)
	}
}

func fmtIndex(i *int) string {
	if i == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *i)
}
