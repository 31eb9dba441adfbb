package placement

import (
	"fmt"

	"github.com/crystalforge/spginit/assign"
	"github.com/crystalforge/spginit/crystal"
	"github.com/crystalforge/spginit/rng"
	"github.com/crystalforge/spginit/wyckoff"
)

// Place attempts to place every assignment into cr, in order, using fill
// to expand each drawn point into its full symmetry orbit. It returns
// ErrAttemptsExhausted (wrapped with the offending Wyckoff letter and
// species) on the first assignment that can't be placed within
// maxAttempts.
//
// Complexity: O(n * maxAttempts * k) worst case, for n assignments and k
// sites per orbit.
func Place(src rng.Source, cr *crystal.Crystal, fill wyckoff.FillInfo, assignments []assign.Assignment, maxAttempts int) error {
	for _, a := range assignments {
		if err := placeOne(src, cr, fill, a, maxAttempts); err != nil {
			return fmt.Errorf("placement: letter %c (Z=%d): %w", a.WP.Letter, a.Z, err)
		}
	}
	return nil
}

func placeOne(src rng.Source, cr *crystal.Crystal, fill wyckoff.FillInfo, a assign.Assignment, maxAttempts int) error {
	attempts := maxAttempts
	if a.WP.Unique() {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		x, y, z := src.Float64(0, 1), src.Float64(0, 1), src.Float64(0, 1)
		fx, fy, fz, err := a.WP.Coords.Eval(x, y, z)
		if err != nil {
			return err
		}

		sites, err := expandOrbit(fill, fx, fy, fz)
		if err != nil {
			return err
		}

		if cr.FillCellWithAtom(a.Z, sites) {
			return nil
		}
	}
	return ErrAttemptsExhausted
}

// expandOrbit evaluates every (duplication, position) combination at the
// drawn representative point, per wyckoff.FillInfo's documented recipe.
func expandOrbit(fill wyckoff.FillInfo, fx, fy, fz float64) ([][3]float64, error) {
	sites := make([][3]float64, 0, len(fill.Duplications)*len(fill.Positions))
	for _, d := range fill.Duplications {
		for _, p := range fill.Positions {
			px, py, pz, err := p.Eval(fx, fy, fz)
			if err != nil {
				return nil, err
			}
			sites = append(sites, [3]float64{d[0] + px, d[1] + py, d[2] + pz})
		}
	}
	return sites, nil
}
