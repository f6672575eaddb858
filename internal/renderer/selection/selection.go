// Package selection provides the Selection value type: a span of buffer
// text described by a fixed anchor and a moving end.
//
// A Selection is a plain value. Nothing in the navigation state machine
// creates or consumes one yet; range-based commands can build one from an
// anchor and the live cursor position.
package selection

import (
	"fmt"

	"github.com/dshills/glance/internal/engine/buffer"
)

// Selection is a span between an anchor and a moving point.
// Equality is structural, so two selections compare equal with ==
// when both endpoints match.
type Selection struct {
	anchor buffer.Position
	moving buffer.Position
}

// FromSingle creates an empty selection anchored and ending at pos.
func FromSingle(pos buffer.Position) Selection {
	return Selection{anchor: pos, moving: pos}
}

// FromPair creates a selection from an anchor and a moving point.
func FromPair(anchor, moving buffer.Position) Selection {
	return Selection{anchor: anchor, moving: moving}
}

// Anchor returns the fixed end of the selection.
func (s Selection) Anchor() buffer.Position {
	return s.anchor
}

// Moving returns the live end of the selection.
func (s Selection) Moving() buffer.Position {
	return s.moving
}

// WithMoving returns a copy of s whose moving point is pos.
func (s Selection) WithMoving(pos buffer.Position) Selection {
	s.moving = pos
	return s
}

// IsEmpty returns true if both ends coincide.
func (s Selection) IsEmpty() bool {
	return s.anchor == s.moving
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("%s-%s", s.anchor, s.moving)
}
