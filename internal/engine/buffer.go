package engine

// Buffer is the composition buffer: the ordered sequence of characters
// typed since the last reset. It only grows and shrinks at the tail
// (Append, Pop, Clear); trigger rewrites replace elements in place and
// never reorder or resize it.
type Buffer struct {
	runes []rune
}

// NewBuffer creates an empty composition buffer.
func NewBuffer() *Buffer {
	return &Buffer{runes: make([]rune, 0, 16)}
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// At returns the character at position i. The caller guarantees i is
// in range.
func (b *Buffer) At(i int) rune {
	return b.runes[i]
}

// Append adds a character at the tail.
func (b *Buffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// Pop removes and returns the last character. It is a no-op on an
// empty buffer.
func (b *Buffer) Pop() (rune, bool) {
	if len(b.runes) == 0 {
		return 0, false
	}
	r := b.runes[len(b.runes)-1]
	b.runes = b.runes[:len(b.runes)-1]
	return r, true
}

// Clear removes all characters.
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
}

// Set replaces the character at position i. The caller guarantees i is
// in range.
func (b *Buffer) Set(i int, r rune) {
	b.runes[i] = r
}

// Runes returns a copy of the buffer contents.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}

// String returns the buffer contents as a string.
func (b *Buffer) String() string {
	return string(b.runes)
}

// suffix returns the characters strictly after position i, aliasing
// the buffer's storage. Callers must not retain it across mutations.
func (b *Buffer) suffix(i int) []rune {
	return b.runes[i+1:]
}
