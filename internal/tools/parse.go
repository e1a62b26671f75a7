package tools

import (
	"regexp"
	"strconv"
	"strings"
)

// DisplayGeometry is one connected output as reported by xrandr.
type DisplayGeometry struct {
	Name   string
	Width  int
	Height int
	X      int
	Y      int
}

var (
	// "HDMI-1 connected primary 1920x1080+0+0 (normal left inverted ...)"
	connectedLineRe = regexp.MustCompile(`(?:^\s*(\S+)\s+)?\bconnected\b[\sa-z]+(\d+)x(\d+)\+(\d+)\+(\d+)`)
	// "  Absolute upper-left X:  100"
	absoluteLineRe = regexp.MustCompile(`Absolute upper-left (\w):\s+(-?\d+)`)
)

// ParseDisplays extracts the geometry of every connected output, in the order
// the enumerator printed them. Lines that do not match are skipped; no match at
// all yields an empty slice.
func ParseDisplays(text string) []DisplayGeometry {
	displays := []DisplayGeometry{}
	for _, line := range strings.Split(text, "\n") {
		m := connectedLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		g := DisplayGeometry{Name: m[1]}
		var ok bool
		if g.Width, ok = atoi(m[2]); !ok {
			continue
		}
		if g.Height, ok = atoi(m[3]); !ok {
			continue
		}
		if g.X, ok = atoi(m[4]); !ok {
			continue
		}
		if g.Y, ok = atoi(m[5]); !ok {
			continue
		}
		displays = append(displays, g)
	}
	return displays
}

// ParseGeometry maps the axis letter of each "Absolute upper-left" line to its
// value, e.g. {"X": "100", "Y": "50"}. Absent lines are simply missing keys.
func ParseGeometry(text string) map[string]string {
	out := make(map[string]string, 2)
	for _, line := range strings.Split(text, "\n") {
		m := absoluteLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out[m[1]] = m[2]
	}
	return out
}

// ParseWindowID returns the first token of the active-window query output.
func ParseWindowID(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
