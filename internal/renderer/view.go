package renderer

import (
	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/core"
	"github.com/dshills/glance/internal/renderer/gutter"
	"github.com/dshills/glance/internal/renderer/statusline"
	"github.com/dshills/glance/internal/renderer/viewport"
)

// View lays out a full screen: the text window above a one-row status line.
type View struct {
	window *TextWindow
	status *statusline.StatusLine
}

// NewView creates a view numbering lines with g.
func NewView(g *gutter.Gutter) *View {
	return &View{
		window: NewTextWindow(g),
		status: statusline.New(),
	}
}

// Window returns the text window.
func (v *View) Window() *TextWindow {
	return v.window
}

// Status returns the status line.
func (v *View) Status() *statusline.StatusLine {
	return v.status
}

// SetFilename sets the name shown in the status line.
func (v *View) SetFilename(name string) {
	v.status.SetFilename(name)
}

// areas splits the screen of b into the text window and the status row.
func areas(b backend.Backend) (text, status core.ScreenRect) {
	width, height := b.Size()
	return core.RectFromSize(0, 0, height, width).SplitBottom(1)
}

// Render draws state to b and flushes it.
func (v *View) Render(b backend.Backend, state *viewport.State) error {
	textArea, statusArea := areas(b)

	frame, err := v.window.Frame(textArea, state)
	if err != nil {
		return err
	}
	src, th, err := state.Resolve()
	if err != nil {
		return err
	}

	frame.Draw(b)
	v.status.Update(state.Cursor(), state.Region(), src.LineCount())
	if !statusArea.IsEmpty() {
		v.status.Draw(b, statusArea.Top, statusArea.Width(), th)
	}
	b.Show()
	return nil
}

// PositionAt maps the screen cell (x, y) to the buffer position drawn
// there. It reports false for cells outside the text area. The position
// may lie past the end of its line or of the buffer.
func (v *View) PositionAt(b backend.Backend, state *viewport.State, x, y int) (buffer.Position, bool) {
	textArea, _ := areas(b)
	frame, err := v.window.Frame(textArea, state)
	if err != nil || !frame.Text.Contains(x, y) {
		return buffer.Position{}, false
	}
	row := y - frame.Text.Top
	var line core.Line
	if row < len(frame.TextLines) {
		line = frame.TextLines[row]
	}
	return buffer.NewPosition(
		frame.Top+row,
		state.LeftCol()+columnAt(line, x-frame.Text.Left),
	), true
}
