package crystal

import "math"

// AddAtom appends an atom, wrapping its fractional coordinates into
// [0, 1) first. Returns the index of the newly added atom, for use with
// RemoveFrom on a failed attempt.
//
// Complexity: O(1).
func (c *Crystal) AddAtom(a Atom) int {
	a.Fx, a.Fy, a.Fz = wrapUnit(a.Fx), wrapUnit(a.Fy), wrapUnit(a.Fz)
	c.Atoms = append(c.Atoms, a)
	return len(c.Atoms) - 1
}

// RemoveFrom truncates the atom list back to idx, undoing every AddAtom
// call made since index idx was returned. Used by the placement loop's
// backtracking: remove every site just added for a Wyckoff position and
// retry.
//
// Complexity: O(1) (slice truncation; no reallocation).
func (c *Crystal) RemoveFrom(idx int) {
	if idx < 0 || idx > len(c.Atoms) {
		return
	}
	c.Atoms = c.Atoms[:idx]
}

// Distance returns the minimum-image Cartesian distance between two atoms
// under this Crystal's lattice, using the general triclinic metric tensor
// (valid for every crystal system; higher-symmetry systems are simply the
// case where some angles are fixed at 90 or 120 degrees).
func (c *Crystal) Distance(a, b Atom) float64 {
	dx := minImageDelta(a.Fx, b.Fx)
	dy := minImageDelta(a.Fy, b.Fy)
	dz := minImageDelta(a.Fz, b.Fz)

	l := c.Lattice
	ca, cb, cg := cosDeg(l.Alpha), cosDeg(l.Beta), cosDeg(l.Gam)

	sq := (dx*l.A)*(dx*l.A) + (dy*l.B)*(dy*l.B) + (dz*l.C)*(dz*l.C) +
		2*dx*dy*l.A*l.B*cg +
		2*dy*dz*l.B*l.C*ca +
		2*dx*dz*l.A*l.C*cb
	if sq < 0 {
		sq = 0
	}
	return math.Sqrt(sq)
}

// AreIADsOkay reports whether candidate satisfies the minimum interatomic
// distance constraint against every atom already present.
// Coincidence is not special-cased here: a candidate sitting on an
// existing atom fails whenever the IAD for that pair is positive.
// FillCellWithAtom dedups coincident images of the orbit it is placing
// before they reach this check; atoms of other orbits are not deduped.
//
// Complexity: O(n) in the current atom count.
func (c *Crystal) AreIADsOkay(candidate Atom) bool {
	for _, existing := range c.Atoms {
		if c.Distance(candidate, existing) < c.iad(candidate.Z, existing.Z) {
			return false
		}
	}
	return true
}

// FillCellWithAtom commits a full Wyckoff orbit as one transaction: each
// candidate fractional coordinate in sites is first deduplicated against
// every site already added during this same call (collapsing the raw
// (duplication, symmetry-operation) combinations that coincide for
// special positions with nontrivial site symmetry), then checked with
// AreIADsOkay against the rest of the crystal.
// On the first IAD violation, every atom added during this call is rolled
// back and FillCellWithAtom returns false; on success every unique site
// has been committed and it returns true.
//
// Complexity: O(k^2 + k*n) for k candidate sites and n existing atoms (the
// k^2 term is the pairwise dedup pass; k is a handful of symmetry images
// per orbit, never the whole cell).
func (c *Crystal) FillCellWithAtom(z int, sites [][3]float64) bool {
	start := len(c.Atoms)

	for _, s := range sites {
		cand := Atom{Z: z, Fx: wrapUnit(s[0]), Fy: wrapUnit(s[1]), Fz: wrapUnit(s[2])}

		if c.hasCoincidentSince(start, cand) {
			continue
		}
		if !c.AreIADsOkay(cand) {
			c.RemoveFrom(start)
			return false
		}
		c.AddAtom(cand)
	}

	return true
}

// hasCoincidentSince reports whether cand coincides (within SiteEpsilon on
// every axis) with an atom added since index since.
func (c *Crystal) hasCoincidentSince(since int, cand Atom) bool {
	for _, a := range c.Atoms[since:] {
		if math.Abs(minImageDelta(a.Fx, cand.Fx)) < SiteEpsilon &&
			math.Abs(minImageDelta(a.Fy, cand.Fy)) < SiteEpsilon &&
			math.Abs(minImageDelta(a.Fz, cand.Fz)) < SiteEpsilon {
			return true
		}
	}
	return false
}
