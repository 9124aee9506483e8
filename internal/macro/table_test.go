package macro

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTableSetExpand(t *testing.T) {
	tbl := NewTable()
	tbl.Set("vn", "Việt Nam")
	tbl.Set("hn", "Hà Nội")

	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}

	got, ok := tbl.Expand("vn")
	if !ok || got != "Việt Nam" {
		t.Errorf("Expand(vn) = %q, %v; want %q, true", got, ok, "Việt Nam")
	}
	if _, ok := tbl.Expand("xyz"); ok {
		t.Error("Expand(xyz) = true for an unknown word")
	}
	if _, ok := tbl.Expand(""); ok {
		t.Error("Expand(\"\") = true")
	}
}

func TestTableCaseTransfer(t *testing.T) {
	tbl := NewTable()
	tbl.Set("btw", "by the way")

	tests := []struct {
		word string
		want string
	}{
		{"btw", "by the way"},
		{"BTW", "BY THE WAY"},
		{"Btw", "by the way"}, // mixed case keeps the stored text
	}
	for _, tt := range tests {
		got, ok := tbl.Expand(tt.word)
		if !ok || got != tt.want {
			t.Errorf("Expand(%q) = %q, %v; want %q, true", tt.word, got, ok, tt.want)
		}
	}
}

func TestTableHasKeyHasPrefix(t *testing.T) {
	tbl := NewTable()
	tbl.Set("tphcm", "Thành phố Hồ Chí Minh")

	if !tbl.HasKey("tphcm") || !tbl.HasKey("TPHCM") {
		t.Error("HasKey missed a stored key")
	}
	if tbl.HasKey("tp") {
		t.Error("HasKey(tp) = true for a prefix")
	}
	if !tbl.HasPrefix("tp") || !tbl.HasPrefix("tphcm") {
		t.Error("HasPrefix missed a reachable abbreviation")
	}
	if tbl.HasPrefix("xq") {
		t.Error("HasPrefix(xq) = true")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.tsv")
	content := strings.Join([]string{
		"# common abbreviations",
		"vn\tViệt Nam",
		"",
		"hn\tHà Nội",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing table: %v", err)
	}

	tbl := NewTable()
	if err := tbl.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	if got, _ := tbl.Expand("hn"); got != "Hà Nội" {
		t.Errorf("Expand(hn) = %q, want %q", got, "Hà Nội")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.tsv")
	if err := os.WriteFile(path, []byte("vn Việt Nam\n"), 0o644); err != nil {
		t.Fatalf("writing table: %v", err)
	}
	tbl := NewTable()
	if err := tbl.LoadFile(path); err == nil {
		t.Error("LoadFile() = nil error for a line without a tab")
	}
}

func TestLoadFileMissing(t *testing.T) {
	tbl := NewTable()
	if err := tbl.LoadFile(filepath.Join(t.TempDir(), "absent.tsv")); err == nil {
		t.Error("LoadFile() = nil error for a missing file")
	}
}

func TestClassifyCase(t *testing.T) {
	tests := []struct {
		word string
		want caseClass
	}{
		{"btw", caseAllSmall},
		{"BTW", caseAllCapital},
		{"Btw", caseNoChange},
		{"B", caseAllCapital},
		{"", caseNoChange},
	}
	for _, tt := range tests {
		if got := classifyCase(tt.word); got != tt.want {
			t.Errorf("classifyCase(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
