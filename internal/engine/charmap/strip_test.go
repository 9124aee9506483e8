package charmap

import "testing"

func TestStripTone(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'á', 'a'},
		{'à', 'a'},
		{'ả', 'a'},
		{'ã', 'a'},
		{'ạ', 'a'},
		{'ớ', 'ơ'}, // horn preserved
		{'ậ', 'â'}, // circumflex preserved
		{'ặ', 'ă'}, // breve preserved
		{'ữ', 'ư'},
		{'Ế', 'Ê'},
		{'a', 'a'},
		{'ơ', 'ơ'},
		{'đ', 'đ'},
		{'q', 'q'},
		{'7', '7'},
	}

	for _, tt := range tests {
		if got := StripTone(tt.in); got != tt.want {
			t.Errorf("StripTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripAll(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'á', 'a'},
		{'ớ', 'o'},
		{'ặ', 'a'},
		{'ư', 'u'},
		{'ê', 'e'},
		{'ộ', 'o'},
		{'đ', 'd'},
		{'Đ', 'D'},
		{'Â', 'A'},
		{'a', 'a'},
		{'q', 'q'},
		{'9', '9'},
	}

	for _, tt := range tests {
		if got := StripAll(tt.in); got != tt.want {
			t.Errorf("StripAll(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsToned(t *testing.T) {
	tests := []struct {
		in   rune
		want bool
	}{
		{'á', true},
		{'ộ', true},
		{'ừ', true},
		{'â', false},
		{'ơ', false},
		{'a', false},
		{'đ', false},
	}

	for _, tt := range tests {
		if got := IsToned(tt.in); got != tt.want {
			t.Errorf("IsToned(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
