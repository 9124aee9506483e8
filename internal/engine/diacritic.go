package engine

import (
	"unicode"

	"github.com/dshills/vnikey/internal/engine/charmap"
)

// DiacriticRule rewrites a base letter into its shape-marked form when
// it is followed by a permitted letter or sits at the end of the
// buffer. Matching is case-insensitive and accent-stripped; the
// replacement case follows the matched character.
type DiacriticRule struct {
	// Base is the accent-stripped lowercase letter to match.
	Base rune

	// PairWith are the accent-stripped lowercase letters allowed
	// immediately after the match.
	PairWith []rune

	// Lower and Upper are the replacement pair.
	Lower, Upper rune
}

// pairs reports whether next is a permitted follower.
func (r DiacriticRule) pairs(next rune) bool {
	for _, p := range r.PairWith {
		if p == next {
			return true
		}
	}
	return false
}

// Rule sets per shape trigger, matching the VNI convention.
var (
	circumflexRules = []DiacriticRule{
		{Base: 'a', PairWith: []rune{'u', 'n', 'm', 'p', 't', 'c', 'y'}, Lower: 'â', Upper: 'Â'},
		{Base: 'e', PairWith: []rune{'u', 'n', 'm', 'p', 't', 'c', 'y'}, Lower: 'ê', Upper: 'Ê'},
		{Base: 'o', PairWith: []rune{'i', 'n', 'm', 'p', 't', 'c', 'y'}, Lower: 'ô', Upper: 'Ô'},
	}

	hornRules = []DiacriticRule{
		{Base: 'u', PairWith: []rune{'o', 'i', 'n', 'm', 'a', 'p', 't', 'c'}, Lower: 'ư', Upper: 'Ư'},
		{Base: 'o', PairWith: []rune{'i', 'n', 'm', 'p', 't', 'c', 'y'}, Lower: 'ơ', Upper: 'Ơ'},
	}

	breveRules = []DiacriticRule{
		{Base: 'a', PairWith: []rune{'p', 'n', 'm', 't', 'c'}, Lower: 'ă', Upper: 'Ă'},
	}

	crossedDRules = []DiacriticRule{
		{Base: 'd', PairWith: []rune{'a', 'c', 'e', 'i', 'm', 'n', 'o', 'p', 't', 'u', 'y'}, Lower: 'đ', Upper: 'Đ'},
	}
)

// applyDiacritics scans the buffer left to right and rewrites every
// position a rule matches. The scan does not stop at the first match;
// only the first rewrite of the call carries the extra backspace that
// compensates for the trigger keystroke. An empty result means the
// trigger matched nothing.
func (e *Engine) applyDiacritics(rules []DiacriticRule) []EditOp {
	var ops []EditOp
	first := true
	for i := 0; i < e.buf.Len(); i++ {
		ch := e.buf.At(i)
		clean := unicode.ToLower(charmap.StripAll(ch))
		for _, rule := range rules {
			if rule.Base != clean {
				continue
			}
			atEnd := i+1 == e.buf.Len()
			if !atEnd && !rule.pairs(unicode.ToLower(charmap.StripAll(e.buf.At(i+1)))) {
				continue
			}
			rep := rule.Lower
			if unicode.IsUpper(ch) {
				rep = rule.Upper
			}
			ops = append(ops, synthesizeReplace(e.buf, i, rep, first)...)
			e.buf.Set(i, rep)
			first = false
		}
	}
	return ops
}
