// Package combo is the combinatorics solver: given a space group and a
// composition (one count per species), it enumerates every SysP — a way
// of covering each species' count exactly, by some number of orbits
// drawn from the space group's Wyckoff positions, grouped by
// wyckoff.GroupsOf's similarity relation.
//
// Algorithm: species are processed most-abundant-first (ties broken by
// input order, via a stable sort); each species is solved independently by
// a depth-first search over a usage tracker (one entry per similar-Wyckoff
// group), then the per-species results are combined across species by
// cross-product, rejecting any combination that would need more instances
// of a unique group than it has distinct letters for (the uniqueness
// budget is the one thing that couples species together). The per-species
// DFS itself is a mutate-then-undo recursion over a single shared tracker
// slice: it mutates the tracker in place and restores it on the way back
// up, rather than copying search state per branch.
//
// Fast-path modes: enumerateSpecies always tries the non-unique-preferring
// search first (skip a unique entry while some open non-unique entry's
// multiplicity still fits within the remainder), falling back to the
// unrestricted search only
// if that yields nothing — except for the last species, which always uses
// the unrestricted search, since by then there is nothing left to
// preserve unique positions for. A stopAfterFirst flag (IsPossible's early
// exit) short-circuits both the per-species DFS and the cross-species
// combination as soon as one full SysP exists.
package combo
