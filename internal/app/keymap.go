package app

import (
	"fmt"
	"sort"

	"github.com/dshills/glance/internal/renderer/backend"
)

// Unbound is the command name that removes a default binding.
const Unbound = "none"

var defaultBindings = map[string]string{
	"Up":     CmdMoveUp,
	"k":      CmdMoveUp,
	"Down":   CmdMoveDown,
	"j":      CmdMoveDown,
	"Left":   CmdMoveLeft,
	"h":      CmdMoveLeft,
	"Right":  CmdMoveRight,
	"l":      CmdMoveRight,
	"Home":   CmdLineStart,
	"0":      CmdLineStart,
	"End":    CmdLineEnd,
	"$":      CmdLineEnd,
	"g":      CmdFirstLine,
	"G":      CmdLastLine,
	"PgUp":   CmdPageUp,
	"Ctrl-B": CmdPageUp,
	"PgDn":   CmdPageDown,
	"Ctrl-F": CmdPageDown,
	"Ctrl-L": CmdRedraw,
	"Esc":    CmdClearMessage,
	"q":      CmdQuit,
	"Ctrl-C": CmdQuit,
}

// Keymap maps canonical key names to command names.
type Keymap struct {
	bindings map[string]string
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	km := &Keymap{bindings: make(map[string]string, len(defaultBindings))}
	for k, cmd := range defaultBindings {
		km.bindings[k] = cmd
	}
	return km
}

// NewKeymap returns the built-in bindings with overrides applied.
// Overrides are applied in key order so errors are reported deterministically.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	km := DefaultKeymap()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := km.Bind(k, overrides[k]); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// Bind binds key to command. Binding to Unbound removes the key.
func (km *Keymap) Bind(key, command string) error {
	name, err := backend.CanonicalKeyName(key)
	if err != nil {
		return err
	}
	if command == Unbound {
		delete(km.bindings, name)
		return nil
	}
	if _, ok := commands[command]; !ok {
		return fmt.Errorf("%w %q bound to %s", ErrUnknownCommand, command, name)
	}
	km.bindings[name] = command
	return nil
}

// Lookup returns the command bound to a canonical key name.
func (km *Keymap) Lookup(key string) (string, bool) {
	cmd, ok := km.bindings[key]
	return cmd, ok
}

// Bindings returns a copy of all bindings.
func (km *Keymap) Bindings() map[string]string {
	out := make(map[string]string, len(km.bindings))
	for k, cmd := range km.bindings {
		out[k] = cmd
	}
	return out
}
