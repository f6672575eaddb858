// Package theme defines the colors the viewer paints with.
//
// A Theme names a handful of color slots (normal text, the cursor's line,
// line numbers, the status line). Themes come from the built-in set, can be
// adjusted slot by slot from configuration, and can be imported from or
// exported to VS Code color theme JSON.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/glance/internal/renderer/core"
)

// ErrUnknownSlot is returned when setting a color slot that does not exist.
var ErrUnknownSlot = errors.New("unknown theme color slot")

// Color slot names, as used in configuration and init scripts.
const (
	SlotTextForeground       = "text.foreground"
	SlotTextBackground       = "text.background"
	SlotSelectedForeground   = "selected.foreground"
	SlotSelectedBackground   = "selected.background"
	SlotLineNumberForeground = "linenumber.foreground"
	SlotLineNumberCurrent    = "linenumber.current"
	SlotStatusForeground     = "status.foreground"
	SlotStatusBackground     = "status.background"
)

// Theme defines colors for the text window and its surroundings.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// TextForeground and TextBackground color ordinary text and empty space.
	TextForeground core.Color
	TextBackground core.Color

	// SelectedLineForeground and SelectedLineBackground color the cursor's line.
	SelectedLineForeground core.Color
	SelectedLineBackground core.Color

	// LineNumber colors gutter numbers; LineNumberCurrent the cursor's number.
	LineNumber        core.Color
	LineNumberCurrent core.Color

	StatusForeground core.Color
	StatusBackground core.Color
}

// TextStyle is the style for ordinary text rows.
func (t *Theme) TextStyle() core.Style {
	return core.NewStyle(t.TextForeground, t.TextBackground)
}

// BackgroundStyle paints empty space in the text background color.
func (t *Theme) BackgroundStyle() core.Style {
	return core.NewStyle(t.TextBackground, t.TextBackground)
}

// SelectedLineStyle is the style for the row holding the cursor.
func (t *Theme) SelectedLineStyle() core.Style {
	return core.NewStyle(t.SelectedLineForeground, t.SelectedLineBackground)
}

// CursorStyle is the style for the character under the cursor.
func (t *Theme) CursorStyle() core.Style {
	return t.SelectedLineStyle().Reverse()
}

// LineNumberStyle is the style for gutter numbers.
func (t *Theme) LineNumberStyle() core.Style {
	return core.NewStyle(t.LineNumber, t.TextBackground)
}

// LineNumberCurrentStyle is the style for the cursor line's gutter number.
func (t *Theme) LineNumberCurrentStyle() core.Style {
	return core.NewStyle(t.LineNumberCurrent, t.TextBackground).Bold()
}

// StatusStyle is the style for the status line.
func (t *Theme) StatusStyle() core.Style {
	return core.NewStyle(t.StatusForeground, t.StatusBackground)
}

// Clone returns an independent copy of the theme.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

// slot returns a pointer to the named color slot.
func (t *Theme) slot(name string) (*core.Color, bool) {
	switch strings.ToLower(name) {
	case SlotTextForeground:
		return &t.TextForeground, true
	case SlotTextBackground:
		return &t.TextBackground, true
	case SlotSelectedForeground:
		return &t.SelectedLineForeground, true
	case SlotSelectedBackground:
		return &t.SelectedLineBackground, true
	case SlotLineNumberForeground:
		return &t.LineNumber, true
	case SlotLineNumberCurrent:
		return &t.LineNumberCurrent, true
	case SlotStatusForeground:
		return &t.StatusForeground, true
	case SlotStatusBackground:
		return &t.StatusBackground, true
	default:
		return nil, false
	}
}

// Set assigns a color to the named slot.
func (t *Theme) Set(slot string, c core.Color) error {
	p, ok := t.slot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	*p = c
	return nil
}

// SetHex parses hex and assigns it to the named slot.
func (t *Theme) SetHex(slot, hex string) error {
	c, err := core.ColorFromHex(hex)
	if err != nil {
		return fmt.Errorf("theme slot %s: %w", slot, err)
	}
	return t.Set(slot, c)
}

// Get returns the color of the named slot.
func (t *Theme) Get(slot string) (core.Color, bool) {
	p, ok := t.slot(slot)
	if !ok {
		return core.Color{}, false
	}
	return *p, true
}

// Slots returns all slot names in sorted order.
func Slots() []string {
	slots := []string{
		SlotTextForeground,
		SlotTextBackground,
		SlotSelectedForeground,
		SlotSelectedBackground,
		SlotLineNumberForeground,
		SlotLineNumberCurrent,
		SlotStatusForeground,
		SlotStatusBackground,
	}
	sort.Strings(slots)
	return slots
}

// ApplyOverrides sets each slot in overrides (slot name -> hex color).
// All overrides are attempted; the errors are joined.
func (t *Theme) ApplyOverrides(overrides map[string]string) error {
	var errs []error
	for slot, hex := range overrides {
		if err := t.SetHex(slot, hex); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
