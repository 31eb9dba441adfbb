package assign

import "github.com/crystalforge/spginit/wyckoff"

// Assignment is one (WP, Z) pair: a Wyckoff position this species' atom
// will occupy, realized from either the solver or a forced assignment.
type Assignment struct {
	WP wyckoff.WP
	Z  int
}

// Forced pins species Z to the named Wyckoff letter before the solver
// ever runs.
type Forced struct {
	Z      int
	Letter byte
}
