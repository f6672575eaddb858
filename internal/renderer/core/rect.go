package core

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the cell (x, y) lies inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// SplitLeft cuts a column strip of the given width off the left edge.
// Returns the strip and the remainder. The strip never exceeds r.
func (r ScreenRect) SplitLeft(width int) (strip, rest ScreenRect) {
	width = max(0, min(width, r.Width()))
	strip = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Bottom, Right: r.Left + width}
	rest = ScreenRect{Top: r.Top, Left: r.Left + width, Bottom: r.Bottom, Right: r.Right}
	return strip, rest
}

// SplitBottom cuts a row strip of the given height off the bottom edge.
// Returns the remainder and the strip. The strip never exceeds r.
func (r ScreenRect) SplitBottom(height int) (rest, strip ScreenRect) {
	height = max(0, min(height, r.Height()))
	rest = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Bottom - height, Right: r.Right}
	strip = ScreenRect{Top: r.Bottom - height, Left: r.Left, Bottom: r.Bottom, Right: r.Right}
	return rest, strip
}
