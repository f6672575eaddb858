package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/glance/internal/renderer/core"
)

// ErrInvalidThemeJSON is returned when a VS Code theme file cannot be parsed.
var ErrInvalidThemeJSON = errors.New("invalid theme JSON")

// vscodeKeys maps theme slots to VS Code workbench color keys.
// Dots in the keys are escaped for gjson/sjson paths.
var vscodeKeys = []struct {
	slot string
	path string
}{
	{SlotTextForeground, `colors.editor\.foreground`},
	{SlotTextBackground, `colors.editor\.background`},
	{SlotSelectedForeground, `colors.editor\.foreground`},
	{SlotSelectedBackground, `colors.editor\.lineHighlightBackground`},
	{SlotLineNumberForeground, `colors.editorLineNumber\.foreground`},
	{SlotLineNumberCurrent, `colors.editorLineNumber\.activeForeground`},
	{SlotStatusForeground, `colors.statusBar\.foreground`},
	{SlotStatusBackground, `colors.statusBar\.background`},
}

// ImportVSCode reads a VS Code color theme file and overlays its colors on base.
// Slots missing from the file keep base's colors.
func ImportVSCode(path string, base *Theme) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return ParseVSCode(data, base)
}

// ParseVSCode overlays the colors of a VS Code theme document on base.
func ParseVSCode(data []byte, base *Theme) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidThemeJSON
	}

	t := base.Clone()
	doc := gjson.ParseBytes(data)
	if name := doc.Get("name"); name.Exists() {
		t.Name = name.String()
	}

	for _, k := range vscodeKeys {
		v := doc.Get(k.path)
		if !v.Exists() {
			continue
		}
		c, err := core.ColorFromHex(stripAlpha(v.String()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidThemeJSON, k.path, err)
		}
		if err := t.Set(k.slot, c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ExportVSCode renders t as a minimal VS Code color theme document.
func ExportVSCode(t *Theme) ([]byte, error) {
	doc := []byte(`{"type":"dark"}`)
	if bg := t.TextBackground; int(bg.R)+int(bg.G)+int(bg.B) > 3*127 {
		doc = []byte(`{"type":"light"}`)
	}

	var err error
	if doc, err = sjson.SetBytes(doc, "name", t.Name); err != nil {
		return nil, err
	}
	for _, k := range vscodeKeys {
		c, _ := t.Get(k.slot)
		hex := c.ToHex()
		if hex == "" {
			continue
		}
		if doc, err = sjson.SetBytes(doc, k.path, hex); err != nil {
			return nil, fmt.Errorf("exporting %s: %w", k.slot, err)
		}
	}
	return doc, nil
}

// stripAlpha drops the alpha channel from #RRGGBBAA and #RGBA colors.
func stripAlpha(hex string) string {
	digits := strings.TrimPrefix(hex, "#")
	switch len(digits) {
	case 8:
		return "#" + digits[:6]
	case 4:
		return "#" + digits[:3]
	}
	return hex
}
