// Package elements provides the default Radii implementation for the
// minimum-interatomic-distance collaborator: the element-to-radius table
// is described only through its Radius/ApplyScaling contract, and this
// package is one pluggable default, not an authority callers are
// required to use.
//
// DefaultTable covers a common subset of the periodic table with single-
// bond covalent radii (in the same length unit as a Lattice's a/b/c).
// ApplyScaling sets a single in-table multiplier applied to every radius
// — the mechanism package spginit uses to fold in the caller's IAD
// scaling factor once, rather than threading a scale factor through
// every Radius call. A manual override replaces the base radius before
// scaling (so it is scaled too); the min_radius floor applies after
// scaling, so a caller-supplied floor always wins.
package elements
