package macro

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"
)

// caseClass classifies the letter case of a typed abbreviation.
type caseClass uint8

const (
	caseAllSmall caseClass = iota
	caseAllCapital
	caseNoChange
)

// classifyCase determines how the typed word's case transfers to the
// expansion: a lowercase first letter keeps the expansion as stored,
// an all-capital word uppercases it, mixed case leaves it alone.
func classifyCase(word string) caseClass {
	runes := []rune(word)
	if len(runes) == 0 {
		return caseNoChange
	}
	if unicode.IsLower(runes[0]) {
		return caseAllSmall
	}
	for _, r := range runes[1:] {
		if unicode.IsLower(r) {
			return caseNoChange
		}
	}
	return caseAllCapital
}

// Table maps typed abbreviations to expansion text. Keys are matched
// case-insensitively. Safe for concurrent lookup.
type Table struct {
	mu      sync.RWMutex
	entries map[string]string
	script  *script
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Set adds or replaces an entry.
func (t *Table) Set(key, text string) {
	t.mu.Lock()
	t.entries[strings.ToLower(key)] = text
	t.mu.Unlock()
}

// HasKey reports whether key has an expansion.
func (t *Table) HasKey(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[strings.ToLower(key)] != ""
}

// HasPrefix reports whether any entry starts with prefix. Hosts use
// this to keep a composition open while an abbreviation is still
// reachable.
func (t *Table) HasPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.entries[prefix] != "" {
		return true
	}
	for k := range t.entries {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Expand returns the expansion for word, with the word's case class
// applied. The Lua hook, when loaded, is consulted first; returning a
// string overrides the table, nil falls through.
func (t *Table) Expand(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if t.script != nil {
		if text, ok := t.script.expand(word); ok {
			return applyCase(word, text), true
		}
	}
	t.mu.RLock()
	text := t.entries[strings.ToLower(word)]
	t.mu.RUnlock()
	if text == "" {
		return "", false
	}
	return applyCase(word, text), true
}

// applyCase transfers the typed word's case class onto the expansion.
func applyCase(word, text string) string {
	if classifyCase(word) == caseAllCapital {
		return strings.ToUpper(text)
	}
	return text
}

// LoadFile merges entries from a table file: one "key<TAB>text" per
// line, '#' starts a comment, blank lines are skipped.
func (t *Table) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening macro table %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, expansion, ok := strings.Cut(text, "\t")
		if !ok {
			return fmt.Errorf("macro table %s:%d: missing tab separator", path, line)
		}
		key = strings.TrimSpace(key)
		expansion = strings.TrimSpace(expansion)
		if key == "" || expansion == "" {
			return fmt.Errorf("macro table %s:%d: empty key or expansion", path, line)
		}
		t.Set(key, expansion)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading macro table %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state, if any.
func (t *Table) Close() {
	if t.script != nil {
		t.script.close()
		t.script = nil
	}
}
