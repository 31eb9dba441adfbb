// Package assign is the assignment realizer: it turns one combo.SysP
// into a flat list of (WP, Z) pairs package placement can walk one at a
// time.
//
// Realize samples, per Pick, num_to_choose letters from the pick's group:
// with replacement for a non-unique group (the same orbit may legitimately
// recur, e.g. two separate draws of a general position for two different
// species), without replacement for a unique group, immediately removing
// each drawn letter from that group's shared pool so no later pick in the
// same SysP — another species' pick included — can draw it again:
// uniqueness is a cross-species constraint, not a per-pick one.
//
// ApplyForced handles the caller's forced Wyckoff assignments ahead of
// the solver: it validates each (Z, letter) pair against the space
// group's table up front, converts it directly into an Assignment, and
// returns a wyckoff.View with that letter removed from its group — so
// combo.Enumerate solves only the remaining, unconstrained part of the
// composition, never double-booking a letter the caller already pinned
// down.
package assign
