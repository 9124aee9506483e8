package charmap

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isToneMark reports whether r is one of the five combining tone marks.
func isToneMark(r rune) bool {
	switch r {
	case combAcute, combGrave, combHookAbove, combTilde, combDotBelow:
		return true
	}
	return false
}

// StripTone removes the tone mark from r while preserving shape marks
// (circumflex, breve, horn): ớ becomes ơ, ấ becomes â, á becomes a.
// Runes without a tone mark are returned unchanged.
func StripTone(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	var b strings.Builder
	for _, c := range decomposed {
		if isToneMark(c) {
			continue
		}
		b.WriteRune(c)
	}
	recomposed := []rune(norm.NFC.String(b.String()))
	if len(recomposed) != 1 {
		return r
	}
	return recomposed[0]
}

// StripAll reduces r to its unmarked base letter, removing tone and
// shape marks alike: ớ becomes o, ư becomes u, đ becomes d. Case is
// preserved. Runes without marks are returned unchanged.
func StripAll(r rune) rune {
	// The crossed d has no canonical decomposition.
	switch r {
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	for _, c := range norm.NFD.String(string(r)) {
		if !unicode.Is(unicode.Mn, c) {
			return c
		}
	}
	return r
}

// IsToned reports whether r carries a tone mark.
func IsToned(r rune) bool {
	return StripTone(r) != r
}
