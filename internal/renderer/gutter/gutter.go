// Package gutter renders the line number column to the left of the text.
package gutter

import (
	"strconv"

	"github.com/dshills/glance/internal/renderer/core"
)

// PastEndMarker fills gutter rows below the last line.
const PastEndMarker = "~"

// Gutter renders line numbers in one of the display modes.
type Gutter struct {
	mode Mode
}

// New creates a gutter using the given mode.
func New(mode Mode) *Gutter {
	return &Gutter{mode: mode}
}

// Mode returns the current display mode.
func (g *Gutter) Mode() Mode {
	return g.mode
}

// SetMode changes the display mode.
func (g *Gutter) SetMode(mode Mode) {
	g.mode = mode
}

// Width returns the gutter width for a buffer of lineCount lines:
// the digits of the line count plus one column of separation.
func Width(lineCount int) int {
	return countDigits(lineCount) + 1
}

// Format returns the label for line, right-aligned in a column of the
// given width with one trailing space. Lines at or past lineCount show
// PastEndMarker. An empty buffer still numbers its first line.
func (g *Gutter) Format(line, cursorLine, lineCount, width int) string {
	label := PastEndMarker
	if line < max(lineCount, 1) {
		label = strconv.Itoa(g.mode.number(line, cursorLine))
	}
	return PadLeft(label, width-1) + " "
}

// Render returns one styled line per row of a window whose first row
// shows buffer line top. The cursor line uses the current style.
func (g *Gutter) Render(top, height, lineCount, cursorLine int, normal, current core.Style) []core.Line {
	width := Width(lineCount)
	lines := make([]core.Line, 0, max(height, 0))
	for row := 0; row < height; row++ {
		line := top + row
		style := normal
		if line == cursorLine {
			style = current
		}
		lines = append(lines, core.StyledLine(g.Format(line, cursorLine, lineCount, width), style))
	}
	return lines
}
