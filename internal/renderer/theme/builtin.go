package theme

import (
	"sort"
	"strings"

	"github.com/dshills/glance/internal/renderer/core"
)

// DefaultName is the name of the theme used when none is configured.
const DefaultName = "default"

// builtins maps lookup keys to theme constructors.
var builtins = map[string]func() *Theme{
	"default":        DefaultTheme,
	"monokai":        MonokaiTheme,
	"dracula":        DraculaTheme,
	"solarized-dark": SolarizedDarkTheme,
	"light":          LightTheme,
}

// Lookup returns a fresh copy of the named built-in theme.
// Names are case-insensitive; spaces and underscores match dashes.
func Lookup(name string) (*Theme, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	ctor, ok := builtins[key]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the lookup names of all built-in themes, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// derive builds a theme from a base palette. The selected line is a slight
// lift of the background and the status line a stronger one.
func derive(name string, bg, fg, lineHighlight, lineNumber core.Color) *Theme {
	return &Theme{
		Name:                   name,
		TextForeground:         fg,
		TextBackground:         bg,
		SelectedLineForeground: fg,
		SelectedLineBackground: lineHighlight,
		LineNumber:             lineNumber,
		LineNumberCurrent:      fg,
		StatusForeground:       fg,
		StatusBackground:       bg.Blend(fg, 0.2),
	}
}

// DefaultTheme returns a sensible default dark theme.
func DefaultTheme() *Theme {
	bg := core.ColorFromRGB(30, 30, 30)
	fg := core.ColorFromRGB(212, 212, 212)
	return derive("Default Dark", bg, fg, core.ColorFromRGB(40, 40, 40), bg.Blend(fg, 0.4))
}

// MonokaiTheme returns a Monokai-inspired theme.
func MonokaiTheme() *Theme {
	return derive("Monokai",
		core.ColorFromRGB(39, 40, 34),
		core.ColorFromRGB(248, 248, 242),
		core.ColorFromRGB(62, 61, 50),
		core.ColorFromRGB(117, 113, 94),
	)
}

// DraculaTheme returns a Dracula-inspired theme.
func DraculaTheme() *Theme {
	return derive("Dracula",
		core.ColorFromRGB(40, 42, 54),
		core.ColorFromRGB(248, 248, 242),
		core.ColorFromRGB(68, 71, 90),
		core.ColorFromRGB(98, 114, 164),
	)
}

// SolarizedDarkTheme returns a Solarized Dark theme.
func SolarizedDarkTheme() *Theme {
	return derive("Solarized Dark",
		core.ColorFromRGB(0, 43, 54),
		core.ColorFromRGB(131, 148, 150),
		core.ColorFromRGB(7, 54, 66),
		core.ColorFromRGB(88, 110, 117),
	)
}

// LightTheme returns a light theme.
func LightTheme() *Theme {
	t := derive("Light",
		core.ColorFromRGB(255, 255, 255),
		core.ColorFromRGB(0, 0, 0),
		core.ColorFromRGB(245, 245, 245),
		core.ColorFromRGB(160, 160, 160),
	)
	t.StatusBackground = t.TextBackground.Darken(0.1)
	return t
}
