package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/1broseidon/gridmove/internal/platform"
)

var errUsage = errors.New("usage")

// optionalInt is an int flag that remembers whether it was given.
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid int value: %q", s)
	}
	o.value = &n
	return nil
}

type options struct {
	display    *int
	position   platform.Position
	configPath string
	backend    string
	dryRun     bool
	list       bool
	verbose    bool
}

func newFlagSet(opts *options, display *optionalInt, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gridmove", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gridmove [-d DISPLAY_ID] [options] {l,r}")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Poor man's GridMove: move the active window to the left (l) or right (r)")
		fmt.Fprintln(stderr, "half of a display.")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	fs.Var(display, "d", "Move to display `DISPLAY_ID` (0-based, as listed by -list)")
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/gridmove/config.yaml)")
	fs.StringVar(&opts.backend, "backend", "", "Window system backend: exec or x11 (overrides config)")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print window commands instead of running them")
	fs.BoolVar(&opts.list, "list", false, "List detected displays and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	return fs
}

// parseArgs accepts flags before and after the position argument.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	var display optionalInt
	fs := newFlagSet(&opts, &display, stderr)

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return opts, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	opts.display = display.value

	if opts.list {
		if len(positional) > 0 {
			fmt.Fprintln(stderr, "-list takes no position argument")
			fs.Usage()
			return opts, errUsage
		}
		return opts, nil
	}

	if len(positional) != 1 {
		fmt.Fprintln(stderr, "exactly one position argument is required: l or r")
		fs.Usage()
		return opts, errUsage
	}
	pos, err := platform.ParsePosition(positional[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return opts, errUsage
	}
	opts.position = pos
	return opts, nil
}
