//go:build linux

package platform

import (
	"context"
	"fmt"
	"strconv"

	"github.com/1broseidon/gridmove/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// X11Backend talks to the X server directly instead of shelling out.
type X11Backend struct {
	conn *x11.Connection
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend opens a connection to display ("" means $DISPLAY).
func NewX11Backend(display string) (*X11Backend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &X11Backend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *X11Backend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Displays returns every active RandR CRTC in server order.
func (b *X11Backend) Displays(ctx context.Context) ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, displayFromMonitor(m))
	}
	return displays, nil
}

func (b *X11Backend) ActiveWindow(ctx context.Context) (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return "", err
	}
	return WindowID(strconv.FormatUint(uint64(wid), 10)), nil
}

func (b *X11Backend) WindowGeometry(ctx context.Context, id WindowID) (map[string]string, error) {
	conn, err := b.connection()
	if err != nil {
		return map[string]string{}, err
	}

	win, err := parseWindowID(id)
	if err != nil {
		return map[string]string{}, err
	}
	x, y, err := conn.WindowOrigin(win)
	if err != nil {
		return map[string]string{}, err
	}
	return map[string]string{
		"X": strconv.Itoa(x),
		"Y": strconv.Itoa(y),
	}, nil
}

func (b *X11Backend) UnmaximizeActive(ctx context.Context) error {
	conn, win, err := b.activeWindow()
	if err != nil {
		return err
	}
	return conn.UnmaximizeWindow(win)
}

func (b *X11Backend) MoveResizeActive(ctx context.Context, bounds Rect) error {
	conn, win, err := b.activeWindow()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(win, bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

func (b *X11Backend) SendKeys(ctx context.Context, combo string) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SendKeyCombo(combo)
}

func (b *X11Backend) activeWindow() (*x11.Connection, xproto.Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, 0, err
	}
	win, err := conn.GetActiveWindow()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return nil, 0, fmt.Errorf("no active window")
	}
	return conn, win, nil
}

func (b *X11Backend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, ErrNoConnection
	}
	return b.conn, nil
}

func parseWindowID(id WindowID) (xproto.Window, error) {
	n, err := strconv.ParseUint(string(id), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", id, err)
	}
	return xproto.Window(n), nil
}

func displayFromMonitor(m x11.Monitor) Display {
	return Display{
		ID:   m.ID,
		Name: m.Name,
		Bounds: Rect{
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		},
	}
}
