package core

import "strings"

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// NewSpan creates a styled span.
func NewSpan(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// Line is one rendered row made of styled spans.
type Line []Span

// StyledLine creates a line holding a single span.
func StyledLine(text string, style Style) Line {
	return Line{NewSpan(text, style)}
}

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Len returns the number of characters in the line.
func (l Line) Len() int {
	n := 0
	for _, s := range l {
		n += len([]rune(s.Text))
	}
	return n
}

// Cells expands the line into terminal cells.
// Wide characters are followed by a zero-width continuation cell.
func (l Line) Cells() []Cell {
	cells := make([]Cell, 0, l.Len())
	for _, s := range l {
		for _, r := range s.Text {
			c := NewStyledCell(r, s.Style)
			cells = append(cells, c)
			if c.Width == 2 {
				cells = append(cells, Cell{Rune: 0, Width: 0, Style: s.Style})
			}
		}
	}
	return cells
}
