package engine

import (
	"unicode"

	"github.com/dshills/vnikey/internal/engine/charmap"
)

// vowelRank orders the plain vowels for tone placement; a higher rank
// wins, earliest position among equal ranks.
var vowelRank = map[rune]int{
	'a': 5,
	'e': 4,
	'i': 3,
	'o': 2,
	'u': 1,
	'y': 0,
}

// shapeMarked are the shape-marked vowels (minus ơ, which has its own
// rule) that attract the tone over any plain vowel.
var shapeMarked = map[rune]bool{
	'ê': true,
	'â': true,
	'ô': true,
	'ă': true,
	'ư': true,
}

// oCluster are the letters that form a vowel cluster after o; the tone
// then lands on the second vowel (hoa, hoe, xoong, hoay).
var oCluster = map[rune]bool{
	'a': true,
	'e': true,
	'o': true,
	'y': true,
}

// selectVowel picks the buffer position a tone mark attaches to.
// Precedence, evaluated in one pass over the buffer:
//
//  1. the first ơ wins outright
//  2. the last shape-marked vowel (ê â ô ă ư) seen so far
//  3. an o followed by a/e/o/y yields the following vowel outright
//  4. a g-i digraph with a third character yields that character
//  5. otherwise the highest-ranked plain vowel, earliest among equals
//
// Rule 2's candidate beats rule 5's after the scan completes. The
// returned rune is tone-stripped (shape marks preserved) so it keys
// directly into a tone table; re-marking an already toned vowel works.
func (e *Engine) selectVowel() (rune, int, bool) {
	n := e.buf.Len()
	markIdx := -1
	var markRune rune
	bestRank := -1
	bestIdx := -1
	for i := 0; i < n; i++ {
		ch := e.buf.At(i)
		bare := charmap.StripTone(ch)
		base := unicode.ToLower(charmap.StripAll(ch))
		switch {
		case unicode.ToLower(bare) == 'ơ':
			return bare, i, true
		case shapeMarked[unicode.ToLower(bare)]:
			markRune, markIdx = bare, i
		case base == 'o' && i+1 < n && oCluster[unicode.ToLower(charmap.StripAll(e.buf.At(i+1)))]:
			return charmap.StripTone(e.buf.At(i + 1)), i + 1, true
		case base == 'g' && i+2 < n && unicode.ToLower(charmap.StripAll(e.buf.At(i+1))) == 'i':
			return charmap.StripTone(e.buf.At(i + 2)), i + 2, true
		default:
			if rank, ok := vowelRank[base]; ok && rank > bestRank {
				bestRank, bestIdx = rank, i
			}
		}
	}
	if markIdx >= 0 {
		return markRune, markIdx, true
	}
	if bestIdx >= 0 {
		return charmap.StripTone(e.buf.At(bestIdx)), bestIdx, true
	}
	return 0, 0, false
}
