// Package engine implements the VNI transliteration core.
//
// The engine keeps a rolling buffer of the word being composed. Digits
// typed after a letter sequence act as triggers: 1-5 attach a tone mark
// to the word's accent vowel, 6-9 rewrite letters into their
// circumflex, horn, breve or crossed-d forms. Every key event yields a
// (possibly empty) sequence of edit operations that a host applies to
// the focused text field to keep it synchronized with the buffer.
//
// Processing is synchronous and deterministic: identical buffer state
// and key event always produce identical output, and no input can make
// a call fail. A trigger that matches nothing degrades to a literal
// character.
package engine
