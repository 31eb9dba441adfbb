package latgen

// system describes one crystal system's constraints on the six lattice
// parameters, indexed 0,1,2 for (a,b,c) and (alpha,beta,gamma)
// respectively. lengthGroups partitions {0,1,2} into sets of lengths that
// must be drawn equal; fixedAngles maps an angle index to the degree
// value a crystal system forces it to (an angle absent from the map is
// drawn freely).
type system struct {
	lengthGroups [][]int
	fixedAngles  map[int]float64
}

// classifyBySpg returns the crystal-system constraints for the given
// space group number. Space groups outside 1-230 fall through to the
// cubic row's length grouping with no fixed angles relaxed further than
// that — in practice such an spg is already rejected upstream by
// wyckoff.ErrUnknownSpg, so this path is unreachable in the composed
// pipeline.
func classifyBySpg(spg int) system {
	switch {
	case spg >= 1 && spg <= 2: // triclinic
		return system{
			lengthGroups: [][]int{{0}, {1}, {2}},
			fixedAngles:  map[int]float64{},
		}
	case spg >= 3 && spg <= 15: // monoclinic, unique axis b
		return system{
			lengthGroups: [][]int{{0}, {1}, {2}},
			fixedAngles:  map[int]float64{0: 90, 2: 90},
		}
	case spg >= 16 && spg <= 74: // orthorhombic
		return system{
			lengthGroups: [][]int{{0}, {1}, {2}},
			fixedAngles:  map[int]float64{0: 90, 1: 90, 2: 90},
		}
	case spg >= 75 && spg <= 142: // tetragonal
		return system{
			lengthGroups: [][]int{{0, 1}, {2}},
			fixedAngles:  map[int]float64{0: 90, 1: 90, 2: 90},
		}
	case spg >= 143 && spg <= 167: // trigonal, hexagonal setting
		return system{
			lengthGroups: [][]int{{0, 1}, {2}},
			fixedAngles:  map[int]float64{0: 90, 1: 90, 2: 120},
		}
	case spg >= 168 && spg <= 194: // hexagonal
		return system{
			lengthGroups: [][]int{{0, 1}, {2}},
			fixedAngles:  map[int]float64{0: 90, 1: 90, 2: 120},
		}
	default: // cubic (195-230), and the unreachable out-of-range fallback
		return system{
			lengthGroups: [][]int{{0, 1, 2}},
			fixedAngles:  map[int]float64{0: 90, 1: 90, 2: 90},
		}
	}
}
