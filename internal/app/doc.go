// Package app wires the transliteration engine, configuration and
// macro table into an interactive terminal typing pad.
//
// The pad plays the role of the host text-delivery layer: raw
// keystrokes are committed to a TextField first and engine edit
// sequences are applied on top, which is exactly the contract the
// engine's first-edit compensation assumes.
package app
