package engine

import (
	"reflect"
	"testing"
)

func bufferOf(s string) *Buffer {
	b := NewBuffer()
	for _, r := range s {
		b.Append(r)
	}
	return b
}

func TestSynthesizeReplaceFirstEdit(t *testing.T) {
	// Rewriting the last position: one character back plus the trigger
	// compensation, no suffix.
	buf := bufferOf("a")
	got := synthesizeReplace(buf, 0, 'â', true)
	want := []EditOp{Backspace(2), Insert('â')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("synthesizeReplace = %v, want %v", got, want)
	}
}

func TestSynthesizeReplaceSuffixPreserved(t *testing.T) {
	buf := bufferOf("toan")
	got := synthesizeReplace(buf, 2, 'á', true)
	want := []EditOp{Backspace(3), Insert('á'), Insert('n')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("synthesizeReplace = %v, want %v", got, want)
	}
}

func TestSynthesizeReplaceNotFirstEdit(t *testing.T) {
	buf := bufferOf("anam")
	got := synthesizeReplace(buf, 2, 'â', false)
	want := []EditOp{Backspace(2), Insert('â'), Insert('m')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("synthesizeReplace = %v, want %v", got, want)
	}
}

func TestEditOpString(t *testing.T) {
	tests := []struct {
		op   EditOp
		want string
	}{
		{Backspace(3), "bs(3)"},
		{Insert('á'), "ins(á)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("EditOp.String() = %q, want %q", got, tt.want)
		}
	}
}
