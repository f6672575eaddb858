// Package statusline provides the status line shown below the text window.
package statusline

import (
	"strconv"

	"github.com/dshills/glance/internal/engine/buffer"
	"github.com/dshills/glance/internal/renderer/backend"
	"github.com/dshills/glance/internal/renderer/core"
	"github.com/dshills/glance/internal/renderer/theme"
	"github.com/dshills/glance/internal/renderer/viewport"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the bottom status line: file name on the left,
// cursor position and scroll position on the right, or a message.
type StatusLine struct {
	filename   string
	cursor     buffer.Position
	totalLines int
	scroll     string

	message     string
	messageType MessageType
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// Update refreshes position information from a view's region and cursor.
func (s *StatusLine) Update(cursor buffer.Position, region viewport.VisibleRegion, totalLines int) {
	s.cursor = cursor
	s.totalLines = totalLines
	s.scroll = ScrollLabel(region, totalLines)
}

// SetMessage displays a status message until ClearMessage is called.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// ScrollLabel describes how far through the buffer a region is:
// "All" when every line is visible, "Top", "Bot", or a percentage.
func ScrollLabel(region viewport.VisibleRegion, totalLines int) string {
	top, bottom := region.TopLine, region.BottomLine
	switch {
	case top == 0 && bottom >= totalLines-1:
		return "All"
	case top == 0:
		return "Top"
	case bottom >= totalLines-1:
		return "Bot"
	}
	hidden := totalLines - region.Height()
	return strconv.Itoa(top*100/hidden) + "%"
}

// Line renders the status line to width columns.
func (s *StatusLine) Line(width int, th *theme.Theme) core.Line {
	if width <= 0 {
		return nil
	}
	style := th.StatusStyle()

	if s.message != "" {
		msgStyle := style
		if s.messageType == MessageError {
			msgStyle = msgStyle.Bold()
		}
		return core.Line{core.NewSpan(fit(" "+s.message, width), msgStyle)}
	}

	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	left := " " + name
	right := s.formatPosition() + " "

	// Leave room for the position info; the name is cut first.
	room := width - len([]rune(right)) - 1
	if room < 1 {
		return core.Line{core.NewSpan(fit(right, width), style)}
	}
	left = fit(left, room)
	gap := width - len([]rune(left)) - len([]rune(right))
	return core.Line{
		core.NewSpan(left, style.Bold()),
		core.NewSpan(spaces(gap), style),
		core.NewSpan(right, style),
	}
}

// Draw renders the status line into row y of b.
func (s *StatusLine) Draw(b backend.Backend, y, width int, th *theme.Theme) {
	for x, c := range s.Line(width, th).Cells() {
		if x >= width {
			break
		}
		b.SetCell(x, y, c)
	}
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	// Format: "Ln 123/400, Col 45  50%"
	result := "Ln " + strconv.Itoa(s.cursor.Line+1) + "/" + strconv.Itoa(s.totalLines) +
		", Col " + strconv.Itoa(s.cursor.Column+1)
	if s.scroll != "" {
		result += "  " + s.scroll
	}
	return result
}

// fit truncates or pads s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + spaces(width-len(r))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
