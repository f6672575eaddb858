package viewport

import (
	"fmt"
	"math"

	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/ref"
	"github.com/dshills/glance/internal/renderer/theme"
)

// State is the navigation state of one view: the cursor, the window's
// horizontal offset, the cursor's row within the window and the last
// observed window size.
//
// State does not own its buffer or theme. Both are resolved on each
// operation; once either is released every mutator returns ErrViewClosed.
// State is not safe for concurrent use.
type State struct {
	src   *ref.Ref[Source]
	theme *ref.Ref[*theme.Theme]

	cursor  buffer.Position
	leftCol int
	sticky  int

	// relRow is the cursor's row counted from the top of the window.
	// Invariant: 0 <= relRow <= min(height-1, cursor.Line).
	relRow int

	// anchor is relRow/(height-1) as of the last movement. It is only
	// read when the height changes, so that repeated resizes do not drift.
	anchor float64

	height int
	width  int
}

// New creates a navigation state over src, painted with th.
// The cursor starts at the origin in a MinSize x MinSize window.
func New(src *ref.Ref[Source], th *ref.Ref[*theme.Theme]) *State {
	return &State{
		src:    src,
		theme:  th,
		height: MinSize,
		width:  MinSize,
	}
}

// Source resolves the buffer the state navigates.
func (s *State) Source() (Source, error) {
	src, err := s.src.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: buffer: %w", ErrViewClosed, err)
	}
	return src, nil
}

// Theme resolves the theme the view is painted with.
func (s *State) Theme() (*theme.Theme, error) {
	th, err := s.theme.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: theme: %w", ErrViewClosed, err)
	}
	return th, nil
}

// SetTheme repaints the view with th. The previous reference stays with
// its owner, which is expected to release it.
func (s *State) SetTheme(th *ref.Ref[*theme.Theme]) {
	s.theme = th
}

// Resolve returns both the buffer and the theme.
func (s *State) Resolve() (Source, *theme.Theme, error) {
	return resolve(s.src, s.theme)
}

// Cursor returns the cursor position.
func (s *State) Cursor() buffer.Position {
	return s.cursor
}

// TopLine returns the buffer line shown in the first row of the window.
func (s *State) TopLine() int {
	return s.cursor.Line - s.relRow
}

// LeftCol returns the buffer column shown in the first column of the window.
func (s *State) LeftCol() int {
	return s.leftCol
}

// RelativeRow returns the cursor's row within the window.
func (s *State) RelativeRow() int {
	return s.relRow
}

// VerticalPercent returns the cursor's row as a fraction of the window
// height: 0 on the first row, 1 on the last.
func (s *State) VerticalPercent() float64 {
	return float64(s.relRow) / float64(s.height-1)
}

// StickyColumn returns the column vertical movement tries to return to.
func (s *State) StickyColumn() int {
	return s.sticky
}

// Size returns the last observed window size.
func (s *State) Size() (height, width int) {
	return s.height, s.width
}

// Region returns the buffer coordinates currently on screen.
func (s *State) Region() VisibleRegion {
	top := s.TopLine()
	return VisibleRegion{
		TopLine:    top,
		BottomLine: top + s.height - 1,
		LeftCol:    s.leftCol,
		RightCol:   s.leftCol + s.width - 1,
	}
}

// Resize records a new window size. Sizes below MinSize are raised to it.
// When the height changes the cursor keeps its remembered fraction of the
// window height; when the width shrinks past the cursor the window follows.
func (s *State) Resize(height, width int) {
	height = max(height, MinSize)
	width = max(width, MinSize)

	if height != s.height {
		s.height = height
		row := int(math.Round(s.anchor * float64(height-1)))
		s.relRow = min(row, s.cursor.Line)
	}
	if width != s.width {
		s.width = width
		if s.cursor.Column >= s.leftCol+width {
			s.leftCol = s.cursor.Column + 1 - width
		}
	}
}

// setRow places the cursor on the given window row and remembers its fraction.
func (s *State) setRow(row int) {
	s.relRow = row
	s.anchor = float64(row) / float64(s.height-1)
}

// Move moves the cursor one step. Moving past an edge of the buffer is a
// no-op, not an error.
func (s *State) Move(dir Direction) error {
	src, err := s.Source()
	if err != nil {
		return err
	}

	switch dir {
	case Up:
		s.moveUp(src)
	case Down:
		s.moveDown(src)
	case Left:
		s.moveLeft()
	case Right:
		s.moveRight(src)
	default:
		return fmt.Errorf("unknown direction %s", dir)
	}
	return nil
}

func (s *State) moveUp(src Source) {
	if s.cursor.Line == 0 {
		return
	}
	s.cursor.Line--
	if s.relRow > 0 {
		s.setRow(s.relRow - 1)
	} else {
		// At the top edge: the window scrolls with the cursor.
		s.setRow(0)
	}
	s.snapToSticky(src)
}

func (s *State) moveDown(src Source) {
	if s.cursor.Line+1 >= src.LineCount() {
		return
	}
	s.cursor.Line++
	if s.relRow < s.height-1 {
		s.setRow(s.relRow + 1)
	} else {
		// At the bottom edge: the window scrolls with the cursor.
		s.setRow(s.height - 1)
	}
	s.snapToSticky(src)
}

func (s *State) moveRight(src Source) {
	if src.LineCount() == 0 {
		return
	}
	if s.cursor.Column+1 >= src.LineLength(s.cursor.Line) {
		return
	}
	s.cursor.Column++
	s.sticky = s.cursor.Column
	if s.cursor.Column >= s.leftCol+s.width {
		s.leftCol = s.cursor.Column + 1 - s.width
	}
}

func (s *State) moveLeft() {
	if s.cursor.Column == 0 {
		return
	}
	s.cursor.Column--
	s.sticky = s.cursor.Column
	if s.cursor.Column < s.leftCol {
		s.leftCol = s.cursor.Column
	}
}

// snapToSticky places the cursor on the sticky column of its new line,
// or at the end of the line when the line is too short.
func (s *State) snapToSticky(src Source) {
	length := src.LineLength(s.cursor.Line)
	if s.sticky >= length {
		s.endOfLine(length)
		return
	}
	s.cursor.Column = s.sticky
	s.revealColumn()
}

// revealColumn recenters the window horizontally if the cursor is off
// screen, leaving the cursor three quarters of the way across.
func (s *State) revealColumn() {
	col := s.cursor.Column
	if col >= s.leftCol && col < s.leftCol+s.width {
		return
	}
	s.leftCol = col - min(s.width*3/4, col)
}

// endOfLine moves the cursor to the last character of a line of the given
// length, scrolling horizontally only as far as needed.
func (s *State) endOfLine(length int) {
	if length == 0 {
		s.cursor.Column = 0
		s.leftCol = 0
		return
	}

	col := length - 1
	s.cursor.Column = col
	switch {
	case col >= s.leftCol+s.width:
		s.leftCol = col + 1 - s.width
	case col < s.leftCol:
		s.leftCol = max(col+1-s.width, 0)
	}
}

// snapToLine moves the cursor to the end of its line if its column is past it.
func (s *State) snapToLine(src Source) {
	if src.LineCount() == 0 {
		s.cursor.Column = 0
		s.leftCol = 0
		return
	}
	length := src.LineLength(s.cursor.Line)
	if s.cursor.Column >= length {
		s.endOfLine(length)
	}
}

// Jump moves the cursor to target, scrolling only if it is off screen.
// A target below the last line lands on the last line; a column past the
// end of its line lands on the line's last character.
func (s *State) Jump(target buffer.Position) error {
	src, err := s.Source()
	if err != nil {
		return err
	}

	target.Line = max(target.Line, 0)
	target.Column = max(target.Column, 0)

	count := src.LineCount()
	if count == 0 {
		s.cursor = buffer.Position{}
		s.leftCol = 0
		s.sticky = 0
		s.setRow(0)
		return nil
	}

	region := s.Region()
	line := min(target.Line, count-1)
	if region.ContainsLine(target.Line) {
		s.setRow(line - region.TopLine)
	} else {
		// Recenter: the cursor lands mid-window, or as low as the top allows.
		s.setRow(min(s.height/2, line))
	}
	s.cursor.Line = line

	if !region.ContainsColumn(target.Column) {
		s.leftCol = target.Column - min(s.width*3/4, target.Column)
	}
	s.cursor.Column = target.Column

	s.snapToLine(src)
	s.sticky = s.cursor.Column
	return nil
}

// JumpToEndOfLine moves the cursor to the last character of its line.
// The sticky column is left alone, so a following vertical move returns
// to the column last chosen.
func (s *State) JumpToEndOfLine() error {
	src, err := s.Source()
	if err != nil {
		return err
	}
	s.endOfLine(src.LineLength(s.cursor.Line))
	return nil
}

// JumpToStartOfLine moves the cursor and the window to column 0.
func (s *State) JumpToStartOfLine() error {
	if _, err := s.Source(); err != nil {
		return err
	}
	s.cursor.Column = 0
	s.leftCol = 0
	s.sticky = 0
	return nil
}

// JumpToFirstLine moves the cursor to the first line, keeping its column
// where the line allows.
func (s *State) JumpToFirstLine() error {
	src, err := s.Source()
	if err != nil {
		return err
	}
	s.cursor.Line = 0
	s.setRow(0)
	s.snapToLine(src)
	s.sticky = s.cursor.Column
	return nil
}

// JumpToLastLine moves the cursor to the last line and scrolls so that the
// last line sits within the bottom of the window.
func (s *State) JumpToLastLine() error {
	src, err := s.Source()
	if err != nil {
		return err
	}

	count := src.LineCount()
	line := max(count-1, 0)
	top := 0
	if count > s.height {
		top = count - s.height + 1
	}
	s.cursor.Line = line
	s.setRow(line - top)
	s.snapToLine(src)
	s.sticky = s.cursor.Column
	return nil
}

// PageDown moves the cursor down one window height less one line, keeping
// its row on screen. At the last line it is a no-op.
func (s *State) PageDown() error {
	src, err := s.Source()
	if err != nil {
		return err
	}

	last := src.LineCount() - 1
	if s.cursor.Line >= last {
		return nil
	}
	s.cursor.Line = min(s.cursor.Line+s.height-1, last)
	s.snapToSticky(src)
	return nil
}

// PageUp moves the cursor up one window height less one line, keeping its
// row on screen where the top of the buffer allows. At line 0 it is a no-op.
func (s *State) PageUp() error {
	src, err := s.Source()
	if err != nil {
		return err
	}

	if s.cursor.Line == 0 {
		return nil
	}
	s.cursor.Line = max(s.cursor.Line-(s.height-1), 0)
	if s.relRow > s.cursor.Line {
		s.setRow(s.cursor.Line)
	}
	s.snapToSticky(src)
	return nil
}

// String returns a short description for logs.
func (s *State) String() string {
	return fmt.Sprintf("cursor %s top %d left %d size %dx%d", s.cursor, s.TopLine(), s.leftCol, s.height, s.width)
}
