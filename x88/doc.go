// Package x88 holds the 0x88 board encoding: squares, packed piece codes,
// direction deltas, the square-offset attack table and a game session with
// an undo stack.
//
// On a 0x88 board the difference of two on-board squares identifies their
// geometric relation uniquely, so a 257-entry table indexed by
// to - from + 128 answers which piece kinds could attack across that
// difference without any per-query arithmetic.
package x88
