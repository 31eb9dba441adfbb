package latgen

import (
	"github.com/crystalforge/spginit/crystal"
	"github.com/crystalforge/spginit/rng"
)

// Sample draws a Lattice for the given space group, subject to mins/maxes
// (both six-parameter windows, one field per lattice parameter). See the
// package doc comment for the forced-equality and forced-angle rules.
//
// Complexity: O(1) — at most six draws, each independent of any prior one.
func Sample(src rng.Source, spg int, mins, maxes crystal.Lattice) (crystal.Lattice, error) {
	sys := classifyBySpg(spg)

	lengths, err := sampleLengths(src, sys, mins, maxes)
	if err != nil {
		return crystal.Lattice{}, err
	}
	angles, err := sampleAngles(src, sys, mins, maxes)
	if err != nil {
		return crystal.Lattice{}, err
	}

	lat := crystal.Lattice{
		A: lengths[0], B: lengths[1], C: lengths[2],
		Alpha: angles[0], Beta: angles[1], Gam: angles[2],
	}
	if !lat.Valid() {
		return crystal.Lattice{}, ErrInfeasibleBounds
	}
	return lat, nil
}

func sampleLengths(src rng.Source, sys system, mins, maxes crystal.Lattice) ([3]float64, error) {
	minsArr := [3]float64{mins.A, mins.B, mins.C}
	maxesArr := [3]float64{maxes.A, maxes.B, maxes.C}
	var out [3]float64

	for _, group := range sys.lengthGroups {
		lo, hi := windowOf(group, minsArr, maxesArr)
		if lo > hi {
			return [3]float64{}, ErrInfeasibleBounds
		}
		v := src.Float64(lo, hi)
		for _, idx := range group {
			out[idx] = v
		}
	}
	return out, nil
}

func sampleAngles(src rng.Source, sys system, mins, maxes crystal.Lattice) ([3]float64, error) {
	minsArr := [3]float64{mins.Alpha, mins.Beta, mins.Gam}
	maxesArr := [3]float64{maxes.Alpha, maxes.Beta, maxes.Gam}
	var out [3]float64

	for i := 0; i < 3; i++ {
		if fixed, ok := sys.fixedAngles[i]; ok {
			if fixed < minsArr[i] || fixed > maxesArr[i] {
				return [3]float64{}, ErrInfeasibleBounds
			}
			out[i] = fixed
			continue
		}
		if minsArr[i] > maxesArr[i] {
			return [3]float64{}, ErrInfeasibleBounds
		}
		out[i] = src.Float64(minsArr[i], maxesArr[i])
	}
	return out, nil
}

// windowOf returns the intersection of the [min, max] windows of every
// index in group: the window a single shared draw must be taken from so
// every length in the group ends up equal.
func windowOf(group []int, mins, maxes [3]float64) (lo, hi float64) {
	lo, hi = mins[group[0]], maxes[group[0]]
	for _, idx := range group[1:] {
		if mins[idx] > lo {
			lo = mins[idx]
		}
		if maxes[idx] < hi {
			hi = maxes[idx]
		}
	}
	return lo, hi
}
