package buffer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LineEnding identifies the line ending style a buffer was loaded with.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the conventional short name of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// Buffer is an immutable, line-oriented text store.
// It is safe for concurrent reads since nothing mutates it after loading.
type Buffer struct {
	name       string
	lines      [][]rune
	lineEnding LineEnding
	tabWidth   int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lineEnding: LineEndingLF,
		tabWidth:   DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString creates a buffer holding s.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lineEnding = DetectLineEnding(s)
	b.lines = b.split(s)
	return b
}

// FromLines creates a buffer holding the given lines verbatim (no tab expansion).
func FromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = make([][]rune, len(lines))
	for i, line := range lines {
		b.lines[i] = []rune(line)
	}
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first: CRLF pairs may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return FromString(string(data), opts...), nil
}

// Load reads the file at path into a new buffer named after the file.
func Load(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts = append([]Option{WithName(filepath.Base(path))}, opts...)
	return FromReader(f, opts...)
}

// split normalizes line endings, expands tabs and splits s into lines.
// A trailing line ending does not start an extra empty line.
func (b *Buffer) split(s string) [][]rune {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	// "\n" is one empty line, not two.
	s = strings.TrimSuffix(s, "\n")

	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = b.expandTabs(part)
	}
	return lines
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func (b *Buffer) expandTabs(line string) []rune {
	if !strings.ContainsRune(line, '\t') {
		return []rune(line)
	}

	out := make([]rune, 0, len(line)+b.tabWidth)
	for _, r := range line {
		if r != '\t' {
			out = append(out, r)
			continue
		}
		pad := b.tabWidth - len(out)%b.tabWidth
		for i := 0; i < pad; i++ {
			out = append(out, ' ')
		}
	}
	return out
}

// Name returns the display name of the buffer.
func (b *Buffer) Name() string {
	return b.name
}

// LineEnding returns the line ending style detected at load time.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// TabWidth returns the tab expansion width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// LineLength returns the number of characters on the given line.
// Returns 0 for lines outside the buffer.
func (b *Buffer) LineLength(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// LineContent returns the characters of the given line.
// Returns nil for lines outside the buffer. The result must not be modified.
func (b *Buffer) LineContent(line int) []rune {
	if line < 0 || line >= len(b.lines) {
		return nil
	}
	return b.lines[line]
}

// LineText returns the given line as a string.
func (b *Buffer) LineText(line int) string {
	return string(b.LineContent(line))
}

// Valid returns true if pos addresses a character in the buffer, or the
// origin of an empty line.
func (b *Buffer) Valid(pos Position) bool {
	if pos.Line < 0 || pos.Column < 0 {
		return false
	}
	if len(b.lines) == 0 {
		return pos.IsZero()
	}
	if pos.Line >= len(b.lines) {
		return false
	}
	length := len(b.lines[pos.Line])
	if length == 0 {
		return pos.Column == 0
	}
	return pos.Column < length
}
