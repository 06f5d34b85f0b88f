// Package cli renders the simulator in a terminal: the run header, the
// progress reporters, the final summary and shell completion scripts.
//
// Display* functions write to an [io.Writer]; Format* functions return a
// string and perform no I/O.
package cli
