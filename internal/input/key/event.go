package key

import (
	"fmt"
	"time"
	"unicode"
)

// Action distinguishes key presses from key releases.
type Action uint8

const (
	// ActionPress indicates the key transitioned down.
	ActionPress Action = iota

	// ActionRelease indicates the key transitioned up.
	ActionRelease
)

// String returns the action name.
func (a Action) String() string {
	if a == ActionRelease {
		return "release"
	}
	return "press"
}

// Event represents a single logical key transition.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the produced character for KeyRune events, 0 otherwise.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Action is whether the key was pressed or released.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a press event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a press event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Released returns a copy of the event marked as a key release.
func (e Event) Released() Event {
	e.Action = ActionRelease
	return e
}

// IsPress returns true if this is a key press.
func (e Event) IsPress() bool {
	return e.Action == ActionPress
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsNavigation returns true if the key moves the caret.
func (e Event) IsNavigation() bool {
	return e.Key.IsNavigationKey()
}

// IsWhitespace returns true if the key produces a word boundary,
// either as a special key (space, enter, tab) or as a whitespace rune.
func (e Event) IsWhitespace() bool {
	if e.Key.IsWhitespaceKey() {
		return true
	}
	return e.IsRune() && unicode.IsSpace(e.Rune)
}

// IsBackspace returns true if this is Backspace (with no modifiers).
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// Equals returns true if two events represent the same key transition.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers &&
		e.Action == other.Action
}

// String returns a canonical representation like "a", "Ctrl+Q" or "Left".
func (e Event) String() string {
	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	default:
		keyName = e.Key.String()
	}

	mods := e.Modifiers.Without(ModShift).String()
	if mods == "" {
		return keyName
	}
	return mods + "+" + keyName
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Action: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Action.String())
}
