package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoConnection is returned by backends that were never connected.
var ErrNoConnection = errors.New("backend connection is nil")

// WindowID is an opaque window identifier as reported by the window system.
// An empty id is valid and is passed through unchanged.
type WindowID string

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Display describes a physical display in the virtual desktop.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// Position selects a half of the target display.
type Position int

const (
	Left Position = iota
	Right
)

// ParsePosition accepts the command line tokens "l" and "r".
func ParsePosition(s string) (Position, error) {
	switch strings.TrimSpace(s) {
	case "l":
		return Left, nil
	case "r":
		return Right, nil
	default:
		return Left, fmt.Errorf("invalid position %q (choose from 'l', 'r')", s)
	}
}

func (p Position) String() string {
	if p == Right {
		return "right"
	}
	return "left"
}

// Backend abstracts the window-system operations needed to snap the active
// window. Mutating methods always address the currently active window.
type Backend interface {
	Displays(ctx context.Context) ([]Display, error)
	ActiveWindow(ctx context.Context) (WindowID, error)
	WindowGeometry(ctx context.Context, id WindowID) (map[string]string, error)
	UnmaximizeActive(ctx context.Context) error
	MoveResizeActive(ctx context.Context, bounds Rect) error
	SendKeys(ctx context.Context, combo string) error
}
