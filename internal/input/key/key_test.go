package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyBackspace, "Backspace"},
		{KeyLeft, "Left"},
		{KeySpace, "Space"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	tests := []struct {
		key        Key
		navigation bool
		whitespace bool
	}{
		{KeyUp, true, false},
		{KeyDown, true, false},
		{KeyLeft, true, false},
		{KeyRight, true, false},
		{KeyHome, true, false},
		{KeyEnd, true, false},
		{KeyPageUp, true, false},
		{KeyPageDown, true, false},
		{KeySpace, false, true},
		{KeyEnter, false, true},
		{KeyTab, false, true},
		{KeyBackspace, false, false},
		{KeyEscape, false, false},
		{KeyRune, false, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsNavigationKey(); got != tt.navigation {
			t.Errorf("%s.IsNavigationKey() = %v, want %v", tt.key, got, tt.navigation)
		}
		if got := tt.key.IsWhitespaceKey(); got != tt.whitespace {
			t.Errorf("%s.IsWhitespaceKey() = %v, want %v", tt.key, got, tt.whitespace)
		}
	}
}

func TestModifier(t *testing.T) {
	m := ModNone.With(ModShift).With(ModCtrl)
	if !m.HasShift() || !m.HasCtrl() {
		t.Errorf("Modifier = %v, want shift and ctrl", m)
	}
	if m.HasAlt() || m.HasCaps() {
		t.Errorf("Modifier = %v reports alt/caps", m)
	}
	if got := m.Without(ModCtrl); got != ModShift {
		t.Errorf("Without(ModCtrl) = %v, want %v", got, ModShift)
	}
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift")
	}
}

func TestModifierCapitalizes(t *testing.T) {
	tests := []struct {
		mods Modifier
		want bool
	}{
		{ModNone, false},
		{ModShift, true},
		{ModCaps, true},
		{ModShift | ModCaps, true},
		{ModCtrl, false},
	}
	for _, tt := range tests {
		if got := tt.mods.Capitalizes(); got != tt.want {
			t.Errorf("%v.Capitalizes() = %v, want %v", tt.mods, got, tt.want)
		}
	}
}
