package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystalforge/spginit/assign"
	"github.com/crystalforge/spginit/crystal"
	"github.com/crystalforge/spginit/rng"
	"github.com/crystalforge/spginit/wyckoff"
)

// sequenceSource replays a fixed list of floats for Float64 (cycling once
// exhausted) so a test can drive a specific sequence of draw attempts.
type sequenceSource struct {
	vals []float64
	i    int
}

func (s *sequenceSource) Float64(min, max float64) float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
func (s *sequenceSource) Int(min, max int) int { return min }

func cubicLattice(a float64) crystal.Lattice {
	return crystal.Lattice{A: a, B: a, C: a, Alpha: 90, Beta: 90, Gam: 90}
}
func constIAD(d float64) crystal.IADLookup {
	return func(a, b int) float64 { return d }
}

func TestPlaceUniquePositionSingleAttempt(t *testing.T) {
	view := wyckoff.Default()
	table, err := view.Table(227)
	require.NoError(t, err)
	fill, err := view.FillInfo(227)
	require.NoError(t, err)

	cr, err := crystal.New(cubicLattice(10), constIAD(0.1))
	require.NoError(t, err)

	a := assign.Assignment{WP: table[0], Z: 14}
	err = Place(rng.Default(1), cr, fill, []assign.Assignment{a}, DefaultMaxAttempts)
	require.NoError(t, err)
	assert.Len(t, cr.Atoms, 8, "expected 8 atoms (diamond 8a orbit)")
}

func TestPlaceGeneralPositionRetriesThenSucceeds(t *testing.T) {
	view := wyckoff.Default()
	table, _ := view.Table(1)
	fill, _ := view.FillInfo(1)

	cr, err := crystal.New(cubicLattice(10), constIAD(5.0))
	require.NoError(t, err)
	cr.AddAtom(crystal.Atom{Z: 1, Fx: 0.5, Fy: 0.5, Fz: 0.5})

	src := &sequenceSource{vals: []float64{
		0.51, 0.5, 0.5, // attempt 1: 0.1 A away, violates IAD 5.0
		0.0, 0.0, 0.0, // attempt 2: far enough
	}}

	a := assign.Assignment{WP: table[0], Z: 6}
	err = Place(src, cr, fill, []assign.Assignment{a}, 10)
	require.NoError(t, err)
	assert.Len(t, cr.Atoms, 2)
}

func TestPlaceAttemptsExhaustedWraps(t *testing.T) {
	view := wyckoff.Default()
	table, _ := view.Table(1)
	fill, _ := view.FillInfo(1)

	cr, err := crystal.New(cubicLattice(10), constIAD(50.0))
	require.NoError(t, err)
	cr.AddAtom(crystal.Atom{Z: 1, Fx: 0.5, Fy: 0.5, Fz: 0.5})

	src := &sequenceSource{vals: []float64{0.5, 0.5, 0.5}} // always coincides, always violates
	a := assign.Assignment{WP: table[0], Z: 6}

	err = Place(src, cr, fill, []assign.Assignment{a}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttemptsExhausted)
}
