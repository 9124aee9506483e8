package engine

import (
	"unicode"

	"github.com/dshills/vnikey/internal/engine/charmap"
	"github.com/dshills/vnikey/internal/input/key"
)

// Layout assigns a trigger character to each tone and shape action.
// The zero value disables every trigger.
type Layout struct {
	// Tone triggers.
	Acute, Grave, HookAbove, Tilde, DotBelow rune

	// Shape triggers.
	Circumflex, Horn, Breve, CrossedD rune
}

// VNILayout returns the standard VNI trigger layout: digits 1-5 for
// tones, 6-9 for shapes.
func VNILayout() Layout {
	return Layout{
		Acute:      '1',
		Grave:      '2',
		HookAbove:  '3',
		Tilde:      '4',
		DotBelow:   '5',
		Circumflex: '6',
		Horn:       '7',
		Breve:      '8',
		CrossedD:   '9',
	}
}

// Engine is the key dispatcher. It owns the composition buffer and
// turns one logical key event at a time into edit operations for the
// host text field. It is not safe for concurrent use; process events
// one at a time, in order.
type Engine struct {
	buf    *Buffer
	layout Layout
}

// Option configures an Engine.
type Option func(*Engine)

// WithLayout sets the trigger layout.
func WithLayout(l Layout) Option {
	return func(e *Engine) {
		e.layout = l
	}
}

// New creates an engine with an empty composition buffer. Without
// options it uses the standard VNI layout.
func New(opts ...Option) *Engine {
	e := &Engine{
		buf:    NewBuffer(),
		layout: VNILayout(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Word returns the current composition contents.
func (e *Engine) Word() string {
	return e.buf.String()
}

// Runes returns a copy of the current composition.
func (e *Engine) Runes() []rune {
	return e.buf.Runes()
}

// Len returns the current composition length.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// Reset clears the composition buffer.
func (e *Engine) Reset() {
	e.buf.Clear()
}

// SetLayout replaces the trigger layout. The composition is cleared:
// a layout change is a reset event.
func (e *Engine) SetLayout(l Layout) {
	e.layout = l
	e.buf.Clear()
}

// HandleKey consumes one logical key event and returns the edit
// operations the host must apply to the focused text field. An empty
// result means the host forwards the original keystroke unmodified.
//
// Contract with the host: the raw trigger keystroke is assumed to be
// committed to the field before interception, so the first rewrite of
// a trigger call deletes one extra character. A host that suppresses
// raw keystrokes before calling HandleKey must not use this engine
// unmodified.
func (e *Engine) HandleKey(ev key.Event) []EditOp {
	if !ev.IsPress() {
		return nil
	}
	switch {
	case ev.IsNavigation() || ev.IsWhitespace():
		e.buf.Clear()
		return nil
	case ev.IsBackspace():
		e.buf.Pop()
		return nil
	}
	if !ev.IsRune() {
		return nil
	}

	r := ev.Rune
	if ev.Modifiers.Capitalizes() {
		r = unicode.ToUpper(r)
	}
	ops := e.dispatchTrigger(r)
	if len(ops) == 0 {
		e.buf.Append(r)
	}
	return ops
}

// dispatchTrigger routes a trigger character to its matcher. Ordinary
// characters return nil.
func (e *Engine) dispatchTrigger(r rune) []EditOp {
	switch r {
	case e.layout.Circumflex:
		return e.applyDiacritics(circumflexRules)
	case e.layout.Horn:
		return e.applyDiacritics(hornRules)
	case e.layout.Breve:
		return e.applyDiacritics(breveRules)
	case e.layout.CrossedD:
		return e.applyDiacritics(crossedDRules)
	case e.layout.Acute:
		return e.applyTone(charmap.ToneAcute)
	case e.layout.Grave:
		return e.applyTone(charmap.ToneGrave)
	case e.layout.HookAbove:
		return e.applyTone(charmap.ToneHookAbove)
	case e.layout.Tilde:
		return e.applyTone(charmap.ToneTilde)
	case e.layout.DotBelow:
		return e.applyTone(charmap.ToneDotBelow)
	}
	return nil
}
