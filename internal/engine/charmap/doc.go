// Package charmap holds the static character tables for Vietnamese
// transliteration: one tone table per tone mark, plus the accent
// stripping helpers the matching rules are defined over.
//
// The tables are built once at package initialization by composing the
// twelve base vowels (plain and shape-marked, both cases) with the
// Unicode combining mark of each tone and normalizing to NFC. They are
// never mutated afterwards.
package charmap
