package engine

import "fmt"

// EditKind identifies the kind of an edit operation.
type EditKind uint8

const (
	// EditBackspace deletes characters immediately before the cursor.
	EditBackspace EditKind = iota

	// EditInsert inserts one character at the cursor.
	EditInsert
)

// String returns the kind name.
func (k EditKind) String() string {
	if k == EditInsert {
		return "insert"
	}
	return "backspace"
}

// EditOp is a single edit operation against the host text field.
// A sequence of EditOps is the atomic output of one key event and must
// be applied in order.
type EditOp struct {
	// Kind is the operation kind.
	Kind EditKind

	// Count is the number of characters to delete (EditBackspace only).
	Count int

	// Rune is the character to insert (EditInsert only).
	Rune rune
}

// Backspace builds a delete-n-characters operation.
func Backspace(n int) EditOp {
	return EditOp{Kind: EditBackspace, Count: n}
}

// Insert builds an insert-one-character operation.
func Insert(r rune) EditOp {
	return EditOp{Kind: EditInsert, Rune: r}
}

// String returns a compact representation like "bs(3)" or "ins(á)".
func (op EditOp) String() string {
	if op.Kind == EditInsert {
		return fmt.Sprintf("ins(%c)", op.Rune)
	}
	return fmt.Sprintf("bs(%d)", op.Count)
}

// synthesizeReplace builds the edit operations that rewrite buffer
// position index to r in the host text field: delete everything from
// index to the end of the field, insert the replacement, then retype
// the unchanged suffix. The buffer must not have been mutated yet.
//
// On the first rewrite of a trigger call one extra character is
// deleted: the host has already committed the trigger keystroke itself
// to the field before the engine intercepted it.
func synthesizeReplace(buf *Buffer, index int, r rune, firstEdit bool) []EditOp {
	count := buf.Len() - index
	if firstEdit {
		count++
	}
	suffix := buf.suffix(index)
	ops := make([]EditOp, 0, len(suffix)+2)
	ops = append(ops, Backspace(count), Insert(r))
	for _, s := range suffix {
		ops = append(ops, Insert(s))
	}
	return ops
}
