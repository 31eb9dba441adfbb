// Package placement is the placement loop: given a Crystal carrying only
// its lattice, and a flat list of assign.Assignment pairs, it draws
// free-parameter values for each Wyckoff position, expands the resulting
// point into its full symmetry orbit via the space group's
// wyckoff.FillInfo, and commits the orbit to the Crystal as one
// transaction — all of which crystal.Crystal.FillCellWithAtom already
// implements, so this package's own job is narrow: draw, expand, retry.
//
// A unique Wyckoff position (no free parameter) is attempted exactly
// once, since every draw produces the same site; a position with at
// least one free parameter is retried up to maxAttempts times before the
// whole Place call fails. On failure the caller is expected to discard
// the Crystal entirely and retry from a fresh lattice and/or a freshly
// realized assignment list — this package never rolls back across
// different Wyckoff positions, only within one position's own orbit
// (which crystal.FillCellWithAtom already guarantees).
package placement
