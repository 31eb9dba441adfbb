// Package latgen draws a random Lattice subject to crystal-system
// constraints derived solely from the requested space group. Every free
// parameter is drawn uniformly from its caller-supplied [min, max]
// window; parameters a crystal system forces equal are drawn once from
// the intersection of their windows, and parameters a crystal system
// forces to a fixed angle are validated against their window rather
// than drawn.
//
// Sample returns the zero Lattice and ErrInfeasibleBounds when a forced
// equality's windows don't overlap or a forced angle falls outside its
// window — a configuration error for this (spg, bounds) pair that
// package spginit treats as fatal, not retryable.
package latgen
