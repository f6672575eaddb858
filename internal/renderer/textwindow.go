package renderer

import (
	"github.com/dshills/glance/internal/renderer/core"
	"github.com/dshills/glance/internal/renderer/gutter"
	"github.com/dshills/glance/internal/renderer/viewport"
)

// HintWidth is the width of the reserved column between the line numbers
// and the text.
const HintWidth = 2

// TextWindow renders the text area of one view.
type TextWindow struct {
	gutter *gutter.Gutter

	// top is the buffer line in the first row of the last built lines.
	top int
}

// NewTextWindow creates a text window numbering lines with g.
func NewTextWindow(g *gutter.Gutter) *TextWindow {
	return &TextWindow{gutter: g}
}

// Gutter returns the line number gutter.
func (w *TextWindow) Gutter() *gutter.Gutter {
	return w.gutter
}

// BuildLines records the text area size into state and returns the visible
// lines, each cut at the window's left column and padded or cut to exactly
// width cells.
func (w *TextWindow) BuildLines(height, width int, state *viewport.State) ([]core.Line, error) {
	src, th, err := state.Resolve()
	if err != nil {
		return nil, err
	}
	state.Resize(height, width)

	width = max(width, 0)
	top := visibleTop(state, height)
	w.top = top
	last := min(top+max(height, 0), src.LineCount())
	left := state.LeftCol()
	style := th.TextStyle()

	lines := make([]core.Line, 0, max(last-top, 0))
	for line := top; line < last; line++ {
		var text []rune
		if content := src.LineContent(line); left < len(content) {
			text = content[left:]
		}
		lines = append(lines, core.StyledLine(padCells(text, width), style))
	}
	return lines, nil
}

// HighlightCursor styles the cursor's row as the selected line and the
// character under the cursor in reverse video. With no lines it adds one
// blank row so the cursor stays visible. A cursor outside the rendered rows
// is left unhighlighted.
func (w *TextWindow) HighlightCursor(lines []core.Line, state *viewport.State) ([]core.Line, error) {
	th, err := state.Theme()
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		_, width := state.Size()
		lines = append(lines, core.StyledLine(padCells(nil, width), th.TextStyle()))
	}

	cursor := state.Cursor()
	row := cursor.Line - w.top
	if row < 0 || row >= len(lines) {
		return lines, nil
	}

	lineStyle := th.SelectedLineStyle()
	cursorStyle := th.CursorStyle()

	text := []rune(lines[row].Text())
	col := cursor.Column - state.LeftCol()
	switch {
	case len(text) == 0:
		lines[row] = core.Line{core.NewSpan(" ", cursorStyle)}
	case col < 0 || col >= len(text):
		lines[row] = core.Line{core.NewSpan(string(text), lineStyle)}
	default:
		lines[row] = core.Line{
			core.NewSpan(string(text[:col]), lineStyle),
			core.NewSpan(string(text[col]), cursorStyle),
			core.NewSpan(string(text[col+1:]), lineStyle),
		}
	}
	return lines, nil
}

// Frame lays out area into the gutter, hint column and text area, and
// renders the state into it.
func (w *TextWindow) Frame(area core.ScreenRect, state *viewport.State) (*Frame, error) {
	src, th, err := state.Resolve()
	if err != nil {
		return nil, err
	}

	count := src.LineCount()
	gutterRect, rest := area.SplitLeft(gutter.Width(count))
	hintRect, textRect := rest.SplitLeft(HintWidth)

	lines, err := w.BuildLines(textRect.Height(), textRect.Width(), state)
	if err != nil {
		return nil, err
	}
	if lines, err = w.HighlightCursor(lines, state); err != nil {
		return nil, err
	}
	if len(lines) > textRect.Height() {
		lines = lines[:max(textRect.Height(), 0)]
	}

	gap := textRect
	gap.Top = min(textRect.Top+len(lines), textRect.Bottom)

	return &Frame{
		Area:       area,
		Gutter:     gutterRect,
		Hints:      hintRect,
		Text:       textRect,
		Gap:        gap,
		Background: th.BackgroundStyle(),
		Top:        w.top,
		GutterLines: w.gutter.Render(w.top, gutterRect.Height(), count,
			state.Cursor().Line, th.LineNumberStyle(), th.LineNumberCurrentStyle()),
		TextLines: lines,
	}, nil
}

// visibleTop returns the buffer line drawn in the first row of a text area
// of the given height. An area shorter than viewport.MinSize starts at the
// cursor's line so the cursor stays on screen.
func visibleTop(state *viewport.State, height int) int {
	return state.Cursor().Line - min(state.RelativeRow(), max(height, 1)-1)
}

// cellWidth returns the number of terminal cells r occupies once drawn.
func cellWidth(r rune) int {
	if core.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// padCells returns text cut or padded with spaces to exactly width cells.
// A wide character that would straddle the right edge becomes a space.
func padCells(text []rune, width int) string {
	out := make([]rune, 0, width)
	used := 0
	for _, r := range text {
		cw := cellWidth(r)
		if used+cw > width {
			break
		}
		out = append(out, r)
		used += cw
	}
	for ; used < width; used++ {
		out = append(out, ' ')
	}
	return string(out)
}

// columnAt returns the index of the character covering cell x of line.
// Cells past the end of line count one character each.
func columnAt(line core.Line, x int) int {
	col := 0
	for _, r := range line.Text() {
		x -= cellWidth(r)
		if x < 0 {
			return col
		}
		col++
	}
	return col + x
}
