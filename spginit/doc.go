// Package spginit is the public façade: IsPossible and InitCrystal,
// composing every other package in this module into the single call a
// caller actually wants — "build me a structure in this space group with
// this composition, inside these bounds."
//
// InitCrystal never returns an error value; failures of any kind
// (configuration, combinatoric infeasibility, placement-attempt
// exhaustion) collapse to crystal.Zero() plus a one-line diagnostic on
// standard output and a log entry — the library hands back a value,
// callers decide how loud to be about failure.
package spginit
