package crystal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constIAD(d float64) IADLookup {
	return func(a, b int) float64 { return d }
}

func cubicLattice(a float64) Lattice {
	return Lattice{A: a, B: a, C: a, Alpha: 90, Beta: 90, Gam: 90}
}

func TestNewRejectsInvalidLattice(t *testing.T) {
	_, err := New(Lattice{}, constIAD(1))
	assert.ErrorIs(t, err, ErrInvalidLattice)
}

func TestNewRejectsNilIAD(t *testing.T) {
	_, err := New(cubicLattice(5), nil)
	assert.ErrorIs(t, err, ErrNoIADLookup)
}

func TestZeroSentinel(t *testing.T) {
	z := Zero()
	assert.True(t, z.IsZero(), "Zero() should report IsZero")

	c, err := New(cubicLattice(5), constIAD(0))
	require.NoError(t, err)
	assert.False(t, c.IsZero(), "a valid lattice should not be the zero sentinel")
}

func TestVolumeCubic(t *testing.T) {
	c, err := New(cubicLattice(2), constIAD(0))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, c.Lattice.Volume(), 1e-9)
}

func TestAddAtomWrapsFractional(t *testing.T) {
	c, err := New(cubicLattice(5), constIAD(0))
	require.NoError(t, err)
	idx := c.AddAtom(Atom{Z: 1, Fx: 1.25, Fy: -0.1, Fz: 1.0})
	a := c.Atoms[idx]
	assert.True(t, a.Fx >= 0 && a.Fx < 1, "Fx not wrapped: %+v", a)
	assert.True(t, a.Fy >= 0 && a.Fy < 1, "Fy not wrapped: %+v", a)
	assert.True(t, a.Fz >= 0 && a.Fz < 1, "Fz not wrapped: %+v", a)
}

func TestRemoveFromUndoesAdds(t *testing.T) {
	c, err := New(cubicLattice(5), constIAD(0))
	require.NoError(t, err)
	c.AddAtom(Atom{Z: 1, Fx: 0.1, Fy: 0.1, Fz: 0.1})
	mark := len(c.Atoms)
	c.AddAtom(Atom{Z: 1, Fx: 0.2, Fy: 0.2, Fz: 0.2})
	c.AddAtom(Atom{Z: 1, Fx: 0.3, Fy: 0.3, Fz: 0.3})
	c.RemoveFrom(mark)
	assert.Len(t, c.Atoms, mark)
}

func TestAreIADsOkayRejectsClosePairs(t *testing.T) {
	c, err := New(cubicLattice(10), constIAD(2.0))
	require.NoError(t, err)
	c.AddAtom(Atom{Z: 1, Fx: 0.5, Fy: 0.5, Fz: 0.5})

	tooClose := Atom{Z: 1, Fx: 0.51, Fy: 0.5, Fz: 0.5} // 0.1 Å away, min is 2.0
	assert.False(t, c.AreIADsOkay(tooClose), "expected IAD violation to be detected")

	farEnough := Atom{Z: 1, Fx: 0.9, Fy: 0.5, Fz: 0.5} // 4 Å away (min image)
	assert.True(t, c.AreIADsOkay(farEnough), "expected distant atom to pass IAD check")
}

func TestDistanceUsesMinimumImage(t *testing.T) {
	c, err := New(cubicLattice(10), constIAD(0))
	require.NoError(t, err)
	a := Atom{Fx: 0.01, Fy: 0, Fz: 0}
	b := Atom{Fx: 0.99, Fy: 0, Fz: 0}
	// Direct difference is 0.98 * 10 = 9.8; minimum image is 0.02*10 = 0.2.
	assert.InDelta(t, 0.2, c.Distance(a, b), 1e-9)
}

func TestFillCellWithAtomDedupsCoincidentSites(t *testing.T) {
	c, err := New(cubicLattice(10), constIAD(1.0))
	require.NoError(t, err)
	// Four "symmetry images": three of them coincide at the origin after
	// wraparound, so they collapse onto two distinct points.
	sites := [][3]float64{
		{0, 0, 0},
		{0, 0, 0},        // exact duplicate
		{1e-9, -1e-9, 0}, // duplicate within SiteEpsilon after wrap
		{0.5, 0.5, 0.5},
	}
	ok := c.FillCellWithAtom(11, sites)
	require.True(t, ok, "expected FillCellWithAtom to succeed")
	assert.Len(t, c.Atoms, 2, "expected 2 distinct atoms after dedup")
}

func TestFillCellWithAtomRollsBackOnIADViolation(t *testing.T) {
	c, err := New(cubicLattice(10), constIAD(5.0))
	require.NoError(t, err)
	c.AddAtom(Atom{Z: 1, Fx: 0.5, Fy: 0.5, Fz: 0.5})
	before := len(c.Atoms)

	sites := [][3]float64{
		{0.1, 0.1, 0.1},  // far enough from 0.5,0.5,0.5
		{0.51, 0.5, 0.5}, // within 1 Å of existing atom -> violates IAD 5.0
	}
	ok := c.FillCellWithAtom(1, sites)
	assert.False(t, ok, "expected FillCellWithAtom to fail on IAD violation")
	assert.Len(t, c.Atoms, before, "expected rollback to original atom count")
}

func TestCompositionCountsSpecies(t *testing.T) {
	c, err := New(cubicLattice(5), constIAD(0))
	require.NoError(t, err)
	c.AddAtom(Atom{Z: 11})
	c.AddAtom(Atom{Z: 11})
	c.AddAtom(Atom{Z: 17})
	comp := c.Composition()
	assert.Equal(t, 2, comp[11])
	assert.Equal(t, 1, comp[17])
}
