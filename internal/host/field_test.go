package host

import (
	"testing"

	"github.com/dshills/vnikey/internal/engine"
	"github.com/dshills/vnikey/internal/input/key"
)

func TestTextFieldBasics(t *testing.T) {
	f := NewTextField()
	f.InsertRune('v')
	f.InsertString("ni")
	if got := f.String(); got != "vni" {
		t.Errorf("String() = %q, want %q", got, "vni")
	}
	f.Backspace(1)
	if got := f.String(); got != "vn" {
		t.Errorf("String() = %q, want %q", got, "vn")
	}
}

func TestTextFieldBackspaceClamps(t *testing.T) {
	f := NewTextFieldFrom("ab")
	f.Backspace(10)
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	f.Backspace(1) // empty field is a no-op
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestTextFieldApply(t *testing.T) {
	f := NewTextFieldFrom("toan1")
	f.Apply([]engine.EditOp{
		engine.Backspace(3),
		engine.Insert('á'),
		engine.Insert('n'),
	})
	if got := f.String(); got != "toán" {
		t.Errorf("String() = %q, want %q", got, "toán")
	}
}

// TestRoundTrip types whole words through the engine exactly as a host
// would: the raw keystroke lands in the field first, then the engine's
// edit sequence is applied. The field must always end up equal to the
// composition buffer.
func TestRoundTrip(t *testing.T) {
	words := []struct {
		typed string
		want  string
	}{
		{"a6", "â"},
		{"tie6ng1", "tiếng"},
		{"thu7o7ng1", "thướng"},
		{"hoa1", "hoá"},
		{"toan1", "toán"},
		{"d9o6i2", "đồi"},
		{"anam6", "ânâm"},
		{"aq6", "aq6"},
	}

	for _, w := range words {
		e := engine.New()
		f := NewTextField()
		for _, r := range w.typed {
			f.InsertRune(r)
			f.Apply(e.HandleKey(key.NewRuneEvent(r, key.ModNone)))
		}
		if f.String() != w.want {
			t.Errorf("typing %q: field = %q, want %q", w.typed, f.String(), w.want)
		}
		if f.String() != e.Word() {
			t.Errorf("typing %q: field %q diverged from buffer %q", w.typed, f.String(), e.Word())
		}
	}
}
