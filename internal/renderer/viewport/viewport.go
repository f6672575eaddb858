// Package viewport tracks the visible window over a text buffer and the
// cursor inside it.
//
// The State keeps the cursor at a stable row on screen while it moves and
// while the display is resized. The cursor position and its row relative to
// the top of the window are the only stored vertical state; the top line and
// the visible region are always derived from them.
package viewport

import (
	"errors"
	"fmt"

	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/ref"
	"github.com/dshills/glance/internal/renderer/theme"
)

// ErrViewClosed is returned by operations on a view whose buffer or theme
// has been released.
var ErrViewClosed = errors.New("view closed")

// MinSize is the smallest height and width a State will track.
// Heights below 2 would leave no room to express a relative row.
const MinSize = 2

// Source is the read-only text a State navigates.
type Source interface {
	LineCount() int
	LineLength(line int) int
	LineContent(line int) []rune
}

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// VisibleRegion is the inclusive rectangle of buffer coordinates on screen.
type VisibleRegion struct {
	TopLine    int
	BottomLine int
	LeftCol    int
	RightCol   int
}

// Contains reports whether pos lies inside the region.
func (r VisibleRegion) Contains(pos buffer.Position) bool {
	return r.ContainsLine(pos.Line) && r.ContainsColumn(pos.Column)
}

// ContainsLine reports whether line is within the region's rows.
func (r VisibleRegion) ContainsLine(line int) bool {
	return line >= r.TopLine && line <= r.BottomLine
}

// ContainsColumn reports whether col is within the region's columns.
func (r VisibleRegion) ContainsColumn(col int) bool {
	return col >= r.LeftCol && col <= r.RightCol
}

// Height returns the number of rows in the region.
func (r VisibleRegion) Height() int {
	return r.BottomLine - r.TopLine + 1
}

// Width returns the number of columns in the region.
func (r VisibleRegion) Width() int {
	return r.RightCol - r.LeftCol + 1
}

// String returns the region as "lines a-b, cols c-d".
func (r VisibleRegion) String() string {
	return fmt.Sprintf("lines %d-%d, cols %d-%d", r.TopLine, r.BottomLine, r.LeftCol, r.RightCol)
}

// resolve fetches both collaborators, wrapping release errors in ErrViewClosed.
func resolve(src *ref.Ref[Source], th *ref.Ref[*theme.Theme]) (Source, *theme.Theme, error) {
	s, err := src.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: buffer: %w", ErrViewClosed, err)
	}
	t, err := th.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: theme: %w", ErrViewClosed, err)
	}
	return s, t, nil
}
