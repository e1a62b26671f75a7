package platform

import (
	"context"
	"fmt"
	"io"
)

// DryRunBackend forwards queries to an inner backend and prints mutating
// requests instead of performing them.
type DryRunBackend struct {
	inner Backend
	out   io.Writer
}

var _ Backend = (*DryRunBackend)(nil)

// NewDryRunBackend wraps inner. Planned actions are written to out.
func NewDryRunBackend(inner Backend, out io.Writer) *DryRunBackend {
	return &DryRunBackend{inner: inner, out: out}
}

func (b *DryRunBackend) Displays(ctx context.Context) ([]Display, error) {
	return b.inner.Displays(ctx)
}

func (b *DryRunBackend) ActiveWindow(ctx context.Context) (WindowID, error) {
	return b.inner.ActiveWindow(ctx)
}

func (b *DryRunBackend) WindowGeometry(ctx context.Context, id WindowID) (map[string]string, error) {
	return b.inner.WindowGeometry(ctx, id)
}

func (b *DryRunBackend) UnmaximizeActive(ctx context.Context) error {
	_, err := fmt.Fprintln(b.out, "unmaximize :ACTIVE: (remove maximized_vert,maximized_horz)")
	return err
}

func (b *DryRunBackend) MoveResizeActive(ctx context.Context, bounds Rect) error {
	_, err := fmt.Fprintf(b.out, "move-resize :ACTIVE: gravity=0 x=%d y=%d width=%d height=%d\n",
		bounds.X, bounds.Y, bounds.Width, bounds.Height)
	return err
}

func (b *DryRunBackend) SendKeys(ctx context.Context, combo string) error {
	_, err := fmt.Fprintf(b.out, "key %s\n", combo)
	return err
}
