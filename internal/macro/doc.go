// Package macro implements word-level abbreviation expansion applied
// when a composition commits.
//
// Expansions come from a plain table file (one "abbreviation<TAB>text"
// entry per line) and, optionally, from a Lua script defining
// expand(word); the script takes precedence over the table. The case
// of the typed word carries over to the expansion: an all-capital
// abbreviation produces an all-capital expansion.
package macro
