package platform

import (
	"bytes"
	"context"
	"testing"

	"github.com/1broseidon/gridmove/internal/tools"
)

func TestDryRunBackend_PrintsMutationsAndForwardsQueries(t *testing.T) {
	r := &fakeRunner{outputs: map[string]tools.Result{
		"xrandr": {Stdout: "HDMI-1 connected 1920x1080+0+0 (normal)\n"},
	}}
	var out bytes.Buffer
	b := NewDryRunBackend(newExecBackend(r), &out)
	ctx := context.Background()

	displays, err := b.Displays(ctx)
	if err != nil || len(displays) != 1 {
		t.Fatalf("expected 1 forwarded display, got %d (%v)", len(displays), err)
	}

	if err := b.UnmaximizeActive(ctx); err != nil {
		t.Fatalf("unmaximize: %v", err)
	}
	if err := b.MoveResizeActive(ctx, Rect{X: 960, Y: 0, Width: 960, Height: 1080}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := b.SendKeys(ctx, "super+Right"); err != nil {
		t.Fatalf("keys: %v", err)
	}

	if len(r.calls) != 1 || r.calls[0] != "xrandr" {
		t.Fatalf("expected only the display query to run, got %q", r.calls)
	}
	want := "unmaximize :ACTIVE: (remove maximized_vert,maximized_horz)\n" +
		"move-resize :ACTIVE: gravity=0 x=960 y=0 width=960 height=1080\n" +
		"key super+Right\n"
	if out.String() != want {
		t.Fatalf("expected output:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestParsePosition(t *testing.T) {
	if p, err := ParsePosition("l"); err != nil || p != Left {
		t.Fatalf("expected Left, got %v (%v)", p, err)
	}
	if p, err := ParsePosition("r"); err != nil || p != Right {
		t.Fatalf("expected Right, got %v (%v)", p, err)
	}
	if _, err := ParsePosition("x"); err == nil {
		t.Fatalf("expected error for invalid position")
	}
}
