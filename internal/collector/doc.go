// Package collector drives an operator through the device catalog and
// assembles the captured device IDs.
//
// For every catalog item the collector prints instructions, waits for a
// line on standard input, and (unless the operator typed the skip token)
// reads the clipboard and validates the value. Each item ends in exactly
// one model.Outcome; failures for one item never stop the loop.
//
// Everything runs on the caller's goroutine with blocking I/O. There are
// no timeouts: the collector waits as long as the operator needs.
package collector
