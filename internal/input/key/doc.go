// Package key defines the logical keyboard event model consumed by the
// transliteration engine.
//
// A host key-classification layer (terminal backend, IME bridge, test
// harness) converts its native key representation into an Event. The
// engine only relies on the classification predicates (IsNavigation,
// IsWhitespace, IsBackspace), the produced rune, the modifier state and
// the press/release action; everything else about the physical keyboard
// stays on the host side.
package key
