package engine

import "github.com/dshills/vnikey/internal/engine/charmap"

// applyTone places a tone mark on the vowel chosen by selectVowel and
// returns the edit operations for the rewrite. No selectable vowel, or
// a vowel the tone table has no entry for, yields no operations and
// the trigger falls through to a literal character.
func (e *Engine) applyTone(t charmap.Tone) []EditOp {
	target, idx, ok := e.selectVowel()
	if !ok {
		return nil
	}
	rep, ok := charmap.ToneTable(t).Lookup(target)
	if !ok {
		return nil
	}
	ops := synthesizeReplace(e.buf, idx, rep, true)
	e.buf.Set(idx, rep)
	return ops
}
