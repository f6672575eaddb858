package buffer

import "strings"

// DefaultTabWidth is the number of spaces a tab expands to.
const DefaultTabWidth = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the tab expansion width. Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithName sets the display name of the buffer (usually the file path).
func WithName(name string) Option {
	return func(b *Buffer) {
		b.name = name
	}
}

// DetectLineEnding returns the most common line ending in text, preferring
// CRLF then CR on ties. Text without line breaks is LineEndingLF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	cr := strings.Count(text, "\r") - crlf

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
