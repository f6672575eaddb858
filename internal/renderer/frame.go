package renderer

import (
	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/core"
)

// Frame is one rendered text window, ready to draw.
type Frame struct {
	// Area is the full rectangle the frame covers.
	Area core.ScreenRect

	// Gutter, Hints and Text split Area left to right.
	Gutter core.ScreenRect
	Hints  core.ScreenRect
	Text   core.ScreenRect

	// Gap is the part of Text below the last rendered line.
	Gap core.ScreenRect

	// Top is the buffer line drawn in the first row of Text.
	Top int

	Background  core.Style
	GutterLines []core.Line
	TextLines   []core.Line
}

// Draw writes the frame to b.
func (f *Frame) Draw(b backend.Backend) {
	blank := core.BlankCell(f.Background)
	b.Fill(f.Hints, blank)
	drawLines(b, f.Gutter, f.GutterLines)
	drawLines(b, f.Text, f.TextLines)
	if !f.Gap.IsEmpty() {
		b.Fill(f.Gap, blank)
	}
}

// drawLines draws lines top-down into rect, clipping at its edges.
func drawLines(b backend.Backend, rect core.ScreenRect, lines []core.Line) {
	for i, line := range lines {
		y := rect.Top + i
		if y >= rect.Bottom {
			return
		}
		for j, cell := range line.Cells() {
			x := rect.Left + j
			if x >= rect.Right {
				break
			}
			b.SetCell(x, y, cell)
		}
	}
}
