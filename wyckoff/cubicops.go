package wyckoff

// cubicPointGroupOps generates the 48 coordinate-triple symmetry
// operations of full octahedral (m-3m) point symmetry: every signed
// permutation of (x, y, z). Generated programmatically rather than
// hand-typed as 48 literal strings, since the full set is mechanical once
// the 6 axis permutations and 8 sign patterns are enumerated — this is the
// fill-cell recipe shared by every m-3m space group's general position
// (here, spg 225's Fm-3m).
func cubicPointGroupOps() []Coord3 {
	axes := [3]string{"x", "y", "z"}
	perms := [6][3]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}

	ops := make([]Coord3, 0, len(perms)*8)
	for _, perm := range perms {
		for signs := 0; signs < 8; signs++ {
			var comp [3]string
			for i := 0; i < 3; i++ {
				axis := axes[perm[i]]
				if signs&(1<<uint(i)) != 0 {
					comp[i] = "-" + axis
				} else {
					comp[i] = axis
				}
			}
			ops = append(ops, mustCoord3(comp[0], comp[1], comp[2]))
		}
	}
	return ops
}
