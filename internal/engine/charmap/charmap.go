package charmap

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tone identifies one of the five Vietnamese tone marks.
type Tone uint8

const (
	// ToneAcute is the rising tone (sắc).
	ToneAcute Tone = iota

	// ToneGrave is the falling tone (huyền).
	ToneGrave

	// ToneHookAbove is the dipping tone (hỏi).
	ToneHookAbove

	// ToneTilde is the creaky rising tone (ngã).
	ToneTilde

	// ToneDotBelow is the heavy tone (nặng).
	ToneDotBelow
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneAcute:
		return "acute"
	case ToneGrave:
		return "grave"
	case ToneHookAbove:
		return "hook-above"
	case ToneTilde:
		return "tilde"
	case ToneDotBelow:
		return "dot-below"
	default:
		return "unknown"
	}
}

// Combining marks for the five tones.
const (
	combAcute     = '\u0301'
	combGrave     = '\u0300'
	combHookAbove = '\u0309'
	combTilde     = '\u0303'
	combDotBelow  = '\u0323'
)

// baseVowels are the tone-free vowels a tone mark can attach to:
// plain and shape-marked (circumflex, breve, horn), lowercase.
var baseVowels = []rune{'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y'}

// ToneMap maps every plain or shape-marked vowel (both cases) to its
// toned form. Each map has 24 entries.
type ToneMap map[rune]rune

// Lookup returns the toned form of r, or false if r is not a vowel the
// tone can attach to.
func (tm ToneMap) Lookup(r rune) (rune, bool) {
	toned, ok := tm[r]
	return toned, ok
}

// Len returns the number of entries in the table.
func (tm ToneMap) Len() int {
	return len(tm)
}

var toneMaps = map[Tone]ToneMap{
	ToneAcute:     newToneMap(combAcute),
	ToneGrave:     newToneMap(combGrave),
	ToneHookAbove: newToneMap(combHookAbove),
	ToneTilde:     newToneMap(combTilde),
	ToneDotBelow:  newToneMap(combDotBelow),
}

// ToneTable returns the immutable table for the given tone.
func ToneTable(t Tone) ToneMap {
	return toneMaps[t]
}

func newToneMap(mark rune) ToneMap {
	tm := make(ToneMap, len(baseVowels)*2)
	for _, v := range baseVowels {
		tm[v] = composeMark(v, mark)
		u := unicode.ToUpper(v)
		tm[u] = composeMark(u, mark)
	}
	return tm
}

// composeMark attaches a combining mark to base and returns the
// precomposed rune. Every tone/vowel pairing in baseVowels has a
// precomposed form in Unicode.
func composeMark(base, mark rune) rune {
	composed := []rune(norm.NFC.String(string([]rune{base, mark})))
	if len(composed) != 1 {
		return base
	}
	return composed[0]
}
