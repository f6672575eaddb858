package gutter

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode defines how line numbers are displayed.
type Mode uint8

const (
	// Absolute shows absolute line numbers (1, 2, 3, ...).
	Absolute Mode = iota

	// Relative shows the distance from the cursor line, 0 on the cursor line.
	Relative

	// Hybrid shows the absolute number on the cursor line, distances elsewhere.
	Hybrid
)

var modeNames = [...]string{
	Absolute: "absolute",
	Relative: "relative",
	Hybrid:   "hybrid",
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode parses a mode name as used in configuration.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(m), nil
		}
	}
	return Absolute, fmt.Errorf("unknown line number mode %q", s)
}

// number returns the value displayed for line, given the cursor line.
// Both are 0-based; absolute numbers display 1-based.
func (m Mode) number(line, cursorLine int) int {
	switch m {
	case Relative:
		return absDiff(line, cursorLine)
	case Hybrid:
		if line == cursorLine {
			return line + 1
		}
		return absDiff(line, cursorLine)
	default:
		return line + 1
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// countDigits returns the number of decimal digits in n.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
