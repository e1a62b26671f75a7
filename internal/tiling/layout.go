package tiling

import (
	"github.com/1broseidon/gridmove/internal/platform"
)

// HalfRect returns the left or right half of a display. The width is rounded
// down, so on odd-width displays the rightmost pixel column stays uncovered.
func HalfRect(display platform.Rect, pos platform.Position) platform.Rect {
	adjusted := display
	adjusted.Width = display.Width / 2

	if pos == platform.Right {
		adjusted.X = display.X + adjusted.Width
	}

	return adjusted
}
