// Package host models the consumer side of the engine's edit
// operations: a text field that characters are typed into and that
// edit sequences are applied against.
//
// The real delivery layer (an OS input method bridge) is out of scope;
// TextField is the reference implementation used by the terminal pad
// and by the synchronization tests.
package host
