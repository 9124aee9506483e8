package config

import (
	"errors"
	"fmt"

	"github.com/dshills/vnikey/internal/engine"
)

// Errors returned by configuration validation.
var (
	ErrUnknownAction    = errors.New("unknown trigger action")
	ErrInvalidTrigger   = errors.New("trigger must be a single digit 1-9")
	ErrDuplicateTrigger = errors.New("duplicate trigger digit")
)

// InputConfig configures the transliteration engine.
type InputConfig struct {
	// Triggers overrides the trigger digit per action. Keys are the
	// action names: acute, grave, hook_above, tilde, dot_below,
	// circumflex, horn, breve, crossed_d. Unlisted actions keep their
	// VNI default.
	Triggers map[string]string `toml:"triggers"`

	// ExpandMacros enables abbreviation expansion on commit.
	ExpandMacros bool `toml:"expand_macros"`
}

// MacroConfig configures the macro table.
type MacroConfig struct {
	// Path is the abbreviation table file.
	Path string `toml:"path"`

	// Script is an optional Lua script defining expand(word).
	Script string `toml:"script"`
}

// Config is the full configuration.
type Config struct {
	Input InputConfig `toml:"input"`
	Macro MacroConfig `toml:"macro"`
}

// DefaultConfig returns the configuration used when no file exists:
// the standard VNI layout with macro expansion enabled.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			ExpandMacros: true,
		},
	}
}

// actionNames maps config action names to fields of engine.Layout.
var actionNames = map[string]func(*engine.Layout) *rune{
	"acute":      func(l *engine.Layout) *rune { return &l.Acute },
	"grave":      func(l *engine.Layout) *rune { return &l.Grave },
	"hook_above": func(l *engine.Layout) *rune { return &l.HookAbove },
	"tilde":      func(l *engine.Layout) *rune { return &l.Tilde },
	"dot_below":  func(l *engine.Layout) *rune { return &l.DotBelow },
	"circumflex": func(l *engine.Layout) *rune { return &l.Circumflex },
	"horn":       func(l *engine.Layout) *rune { return &l.Horn },
	"breve":      func(l *engine.Layout) *rune { return &l.Breve },
	"crossed_d":  func(l *engine.Layout) *rune { return &l.CrossedD },
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	seen := make(map[string]string, len(c.Input.Triggers))
	for action, digit := range c.Input.Triggers {
		if _, ok := actionNames[action]; !ok {
			return fmt.Errorf("input.triggers.%s: %w", action, ErrUnknownAction)
		}
		r := []rune(digit)
		if len(r) != 1 || r[0] < '1' || r[0] > '9' {
			return fmt.Errorf("input.triggers.%s = %q: %w", action, digit, ErrInvalidTrigger)
		}
		if prev, ok := seen[digit]; ok {
			return fmt.Errorf("input.triggers.%s and input.triggers.%s both use %q: %w",
				prev, action, digit, ErrDuplicateTrigger)
		}
		seen[digit] = action
	}
	// An override must not collide with a defaulted action's digit.
	layout, err := c.EngineLayout()
	if err != nil {
		return err
	}
	digits := make(map[rune]bool, len(actionNames))
	for _, field := range actionNames {
		d := *field(&layout)
		if digits[d] {
			return fmt.Errorf("trigger layout: %w", ErrDuplicateTrigger)
		}
		digits[d] = true
	}
	return nil
}

// EngineLayout derives the engine trigger layout: the VNI defaults
// with the configured overrides applied.
func (c Config) EngineLayout() (engine.Layout, error) {
	layout := engine.VNILayout()
	for action, digit := range c.Input.Triggers {
		field, ok := actionNames[action]
		if !ok {
			return layout, fmt.Errorf("input.triggers.%s: %w", action, ErrUnknownAction)
		}
		r := []rune(digit)
		if len(r) != 1 {
			return layout, fmt.Errorf("input.triggers.%s = %q: %w", action, digit, ErrInvalidTrigger)
		}
		*field(&layout) = r[0]
	}
	return layout, nil
}
