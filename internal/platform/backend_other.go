//go:build !linux

package platform

import (
	"context"
	"errors"
)

var errX11Unsupported = errors.New("x11 backend is only available on linux")

// X11Backend is unavailable on this platform.
type X11Backend struct{}

var _ Backend = (*X11Backend)(nil)

func NewX11Backend(display string) (*X11Backend, error) {
	return nil, errX11Unsupported
}

func (b *X11Backend) Disconnect() {}

func (b *X11Backend) Displays(ctx context.Context) ([]Display, error) {
	return nil, errX11Unsupported
}

func (b *X11Backend) ActiveWindow(ctx context.Context) (WindowID, error) {
	return "", errX11Unsupported
}

func (b *X11Backend) WindowGeometry(ctx context.Context, id WindowID) (map[string]string, error) {
	return map[string]string{}, errX11Unsupported
}

func (b *X11Backend) UnmaximizeActive(ctx context.Context) error { return errX11Unsupported }

func (b *X11Backend) MoveResizeActive(ctx context.Context, bounds Rect) error {
	return errX11Unsupported
}

func (b *X11Backend) SendKeys(ctx context.Context, combo string) error { return errX11Unsupported }
