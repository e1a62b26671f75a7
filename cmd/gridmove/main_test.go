package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/gridmove/internal/config"
	"github.com/1broseidon/gridmove/internal/platform"
)

type fakeBackend struct {
	displays []platform.Display
	calls    []string
}

func (b *fakeBackend) Displays(context.Context) ([]platform.Display, error) {
	b.calls = append(b.calls, "displays")
	return b.displays, nil
}

func (b *fakeBackend) ActiveWindow(context.Context) (platform.WindowID, error) {
	b.calls = append(b.calls, "active-window")
	return "42", nil
}

func (b *fakeBackend) WindowGeometry(context.Context, platform.WindowID) (map[string]string, error) {
	b.calls = append(b.calls, "geometry")
	return map[string]string{"X": "0", "Y": "0"}, nil
}

func (b *fakeBackend) UnmaximizeActive(context.Context) error {
	b.calls = append(b.calls, "unmaximize")
	return nil
}

func (b *fakeBackend) MoveResizeActive(_ context.Context, r platform.Rect) error {
	b.calls = append(b.calls, fmt.Sprintf("move %d,%d,%d,%d", r.X, r.Y, r.Width, r.Height))
	return nil
}

func (b *fakeBackend) SendKeys(_ context.Context, combo string) error {
	b.calls = append(b.calls, "key "+combo)
	return nil
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, key := range []string{
		config.EnvEnumerator, config.EnvActivator, config.EnvGeometry,
		config.EnvController, config.EnvKeySim, config.EnvBackend, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

func useFakeBackend(t *testing.T, b *fakeBackend) *config.Config {
	t.Helper()
	var seen config.Config
	old := newBackendFn
	newBackendFn = func(cfg *config.Config, _ *slog.Logger) (platform.Backend, func(), error) {
		seen = *cfg
		return b, func() {}, nil
	}
	t.Cleanup(func() { newBackendFn = old })
	return &seen
}

func twoDisplays() []platform.Display {
	return []platform.Display{
		{ID: 0, Name: "HDMI-1", Bounds: platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 1, Name: "DP-1", Bounds: platform.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
	}
}

func TestParseArgs_DisplayAndPosition(t *testing.T) {
	opts, err := parseArgs([]string{"-d", "1", "r"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.display == nil || *opts.display != 1 {
		t.Fatalf("expected display 1, got %v", opts.display)
	}
	if opts.position != platform.Right {
		t.Fatalf("expected right, got %v", opts.position)
	}
}

func TestParseArgs_FlagsAfterPosition(t *testing.T) {
	opts, err := parseArgs([]string{"l", "-d", "0", "-dry-run"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.display == nil || *opts.display != 0 || opts.position != platform.Left || !opts.dryRun {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestParseArgs_DisplayOmittedIsUnset(t *testing.T) {
	opts, err := parseArgs([]string{"l"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.display != nil {
		t.Fatalf("expected unset display, got %d", *opts.display)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := [][]string{
		{},
		{"x"},
		{"l", "r"},
		{"-d", "one", "l"},
		{"-list", "l"},
	}
	for _, args := range cases {
		var stderr bytes.Buffer
		if _, err := parseArgs(args, &stderr); err == nil {
			t.Fatalf("expected error for %q", args)
		}
		if !strings.Contains(stderr.String(), "Usage: gridmove") {
			t.Fatalf("expected usage for %q, got %q", args, stderr.String())
		}
	}
}

func TestRun_MovesToRightHalfOfSecondDisplay(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	var stdout, stderr bytes.Buffer
	if rc := run(context.Background(), []string{"-d", "1", "r"}, &stdout, &stderr); rc != 0 {
		t.Fatalf("run rc=%d, want 0 (stderr=%q)", rc, stderr.String())
	}
	want := []string{"displays", "active-window", "geometry", "unmaximize", "move 2880,0,960,1080", "key super+Right"}
	if !reflect.DeepEqual(b.calls, want) {
		t.Fatalf("expected calls %q, got %q", want, b.calls)
	}
}

func TestRun_MissingDisplayIsSilentNoop(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	var stdout, stderr bytes.Buffer
	if rc := run(context.Background(), []string{"l"}, &stdout, &stderr); rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	if !reflect.DeepEqual(b.calls, []string{"displays"}) {
		t.Fatalf("expected no window commands, got %q", b.calls)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("expected no output, got stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestRun_IndexEqualToCountFails(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	if rc := run(context.Background(), []string{"-d", "2", "l"}, io.Discard, io.Discard); rc != 1 {
		t.Fatalf("run rc=%d, want 1", rc)
	}
	if b.calls[len(b.calls)-1] != "unmaximize" {
		t.Fatalf("expected sequence to stop after unmaximize, got %q", b.calls)
	}
}

func TestRun_DryRunPrintsCommands(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	var stdout bytes.Buffer
	if rc := run(context.Background(), []string{"-dry-run", "-d", "0", "l"}, &stdout, io.Discard); rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	for _, call := range b.calls {
		if strings.HasPrefix(call, "move") || strings.HasPrefix(call, "key") || call == "unmaximize" {
			t.Fatalf("expected no mutating backend call in dry-run, got %q", b.calls)
		}
	}
	out := stdout.String()
	if !strings.Contains(out, "x=0 y=0 width=960 height=1080") || !strings.Contains(out, "key super+Left") {
		t.Fatalf("unexpected dry-run output: %q", out)
	}
}

func TestRun_ListDisplays(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	var stdout bytes.Buffer
	if rc := run(context.Background(), []string{"-list"}, &stdout, io.Discard); rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	want := "0\tHDMI-1\t1920x1080+0+0\n1\tDP-1\t1920x1080+1920+0\n"
	if stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestRun_ConfigFileAndBackendFlag(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	seen := useFakeBackend(t, b)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "restore_snap: false\ntools:\n  controller: /opt/wmctrl\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rc := run(context.Background(), []string{"-config", path, "-backend", "x11", "-d", "0", "r"}, io.Discard, io.Discard)
	if rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	if seen.Backend != config.BackendX11 || seen.Tools.Controller != "/opt/wmctrl" {
		t.Fatalf("unexpected effective config: %+v", seen)
	}
	for _, call := range b.calls {
		if strings.HasPrefix(call, "key") {
			t.Fatalf("expected no snap key with restore_snap=false, got %q", b.calls)
		}
	}
}

func TestRun_InvalidBackendFlag(t *testing.T) {
	isolateEnv(t)
	useFakeBackend(t, &fakeBackend{})

	var stderr bytes.Buffer
	if rc := run(context.Background(), []string{"-backend", "wayland", "l"}, io.Discard, &stderr); rc != 1 {
		t.Fatalf("run rc=%d, want 1", rc)
	}
	if !strings.Contains(stderr.String(), "backend") {
		t.Fatalf("expected backend error, got %q", stderr.String())
	}
}

func TestRun_LogsToStateFileWhenStderrIsNotATerminal(t *testing.T) {
	isolateEnv(t)
	b := &fakeBackend{displays: twoDisplays()}
	useFakeBackend(t, b)

	if rc := run(context.Background(), []string{"-d", "0", "l"}, io.Discard, io.Discard); rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	logPath, err := config.DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "moved active window") {
		t.Fatalf("expected move to be logged, got %q", string(data))
	}
}

func TestRun_HelpExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	if rc := run(context.Background(), []string{"-h"}, io.Discard, &stderr); rc != 0 {
		t.Fatalf("run rc=%d, want 0", rc)
	}
	if !strings.Contains(stderr.String(), "-dry-run") {
		t.Fatalf("expected flag defaults in help, got %q", stderr.String())
	}
}
