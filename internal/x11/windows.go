package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// MoveResizeWindow moves and resizes a window. The EWMH request uses gravity 0,
// so the window manager keeps its default reference point.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).MoveResize(x, y, width, height)
	}
	return nil
}

// UnmaximizeWindow asks the window manager to drop both maximized states.
func (c *Connection) UnmaximizeWindow(windowID xproto.Window) error {
	const removeAction = 0
	if err := ewmh.WmStateReq(c.XUtil, windowID, removeAction, "_NET_WM_STATE_MAXIMIZED_VERT"); err != nil {
		return fmt.Errorf("failed to remove maximized_vert: %w", err)
	}
	if err := ewmh.WmStateReq(c.XUtil, windowID, removeAction, "_NET_WM_STATE_MAXIMIZED_HORZ"); err != nil {
		return fmt.Errorf("failed to remove maximized_horz: %w", err)
	}
	return nil
}

// WindowOrigin returns the window's upper-left corner in root coordinates.
func (c *Connection) WindowOrigin(windowID xproto.Window) (x, y int, err error) {
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate window coordinates: %w", err)
	}
	return int(translate.DstX), int(translate.DstY), nil
}

func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}
