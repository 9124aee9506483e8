package host

import "github.com/dshills/vnikey/internal/engine"

// TextField is a rune-level model of the focused text field's content
// with the cursor at the tail. Raw keystrokes insert at the cursor;
// engine edit sequences rewrite the tail in place.
type TextField struct {
	runes []rune
}

// NewTextField creates an empty text field.
func NewTextField() *TextField {
	return &TextField{}
}

// NewTextFieldFrom creates a text field holding s.
func NewTextFieldFrom(s string) *TextField {
	return &TextField{runes: []rune(s)}
}

// Len returns the field length in runes.
func (f *TextField) Len() int {
	return len(f.runes)
}

// String returns the field contents.
func (f *TextField) String() string {
	return string(f.runes)
}

// Runes returns a copy of the field contents.
func (f *TextField) Runes() []rune {
	out := make([]rune, len(f.runes))
	copy(out, f.runes)
	return out
}

// InsertRune inserts one character at the cursor.
func (f *TextField) InsertRune(r rune) {
	f.runes = append(f.runes, r)
}

// InsertString inserts every rune of s at the cursor.
func (f *TextField) InsertString(s string) {
	f.runes = append(f.runes, []rune(s)...)
}

// Backspace deletes up to n characters immediately before the cursor.
func (f *TextField) Backspace(n int) {
	if n > len(f.runes) {
		n = len(f.runes)
	}
	if n > 0 {
		f.runes = f.runes[:len(f.runes)-n]
	}
}

// Clear empties the field.
func (f *TextField) Clear() {
	f.runes = f.runes[:0]
}

// Apply applies an edit sequence in order.
func (f *TextField) Apply(ops []engine.EditOp) {
	for _, op := range ops {
		switch op.Kind {
		case engine.EditBackspace:
			f.Backspace(op.Count)
		case engine.EditInsert:
			f.InsertRune(op.Rune)
		}
	}
}
