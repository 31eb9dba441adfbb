package combo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystalforge/spginit/wyckoff"
)

// syntheticView builds a minimal wyckoff.View for one fictitious space
// group, isolating combo's own logic from the real compiled-in database.
func syntheticView(table []wyckoff.WP) wyckoff.View {
	return wyckoff.NewStatic(
		map[int][]wyckoff.WP{9001: table},
		map[int]wyckoff.FillInfo{9001: {}},
	)
}

func mustCoord(t *testing.T, x, y, z string) wyckoff.Coord3 {
	t.Helper()
	c, err := wyckoff.NewCoord3(x, y, z)
	require.NoError(t, err)
	return c
}

func TestEnumeratePrefersNonUniqueGroup(t *testing.T) {
	table := []wyckoff.WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "0")},
		{Letter: 'b', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "1/2")},
		{Letter: 'c', Multiplicity: 2, Coords: mustCoord(t, "x", "y", "z")},
	}
	view := syntheticView(table)

	sysps, err := Enumerate(view, 9001, []SpeciesCount{{Z: 11, Count: 2}, {Z: 17, Count: 2}})
	require.NoError(t, err)
	require.NotEmpty(t, sysps)

	// Both species should be coverable via the non-unique mult-2 group
	// alone; at least one SysP should use only that group for species 11.
	found := false
	for _, sp := range sysps {
		for _, sap := range sp.Picks {
			if sap.Species != 11 {
				continue
			}
			if len(sap.Picks) == 1 && !sp.Groups[sap.Picks[0].GroupIndex].Unique {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a SysP that covers species 11 via the non-unique group alone")
}

func TestEnumerateRejectsOverBudgetUniqueUsage(t *testing.T) {
	table := []wyckoff.WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "0")},
	}
	view := syntheticView(table)

	_, err := Enumerate(view, 9001, []SpeciesCount{{Z: 1, Count: 1}, {Z: 2, Count: 1}})
	assert.ErrorIs(t, err, ErrNoPossibility, "only 1 unique letter for 2 species")
}

func TestEnumerateSucceedsWithinUniqueBudget(t *testing.T) {
	table := []wyckoff.WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "0")},
		{Letter: 'b', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "1/2")},
	}
	view := syntheticView(table)

	sysps, err := Enumerate(view, 9001, []SpeciesCount{{Z: 1, Count: 1}, {Z: 2, Count: 1}})
	require.NoError(t, err)
	assert.NotEmpty(t, sysps, "expected at least one SysP using the two distinct unique letters")
}

func TestIsPossibleSingleUniqueLetterOncePerSpecies(t *testing.T) {
	// A single unique letter: it can be used at most once per species, so
	// count 1 is reachable but count 2 is not.
	table := []wyckoff.WP{
		{Letter: 'a', Multiplicity: 1, Coords: mustCoord(t, "0", "0", "0")},
	}
	view := syntheticView(table)

	assert.True(t, IsPossible(view, 9001, []SpeciesCount{{Z: 1, Count: 1}}))
	assert.False(t, IsPossible(view, 9001, []SpeciesCount{{Z: 1, Count: 2}}),
		"the one unique letter cannot be reused within a species")
}

func TestEnumerateUnknownSpgPropagatesError(t *testing.T) {
	view := syntheticView(nil)
	_, err := Enumerate(view, 4242, []SpeciesCount{{Z: 1, Count: 1}})
	assert.ErrorIs(t, err, wyckoff.ErrUnknownSpg)
}

func TestSortedSpeciesOrdersDescendingStable(t *testing.T) {
	in := []SpeciesCount{{Z: 1, Count: 3}, {Z: 2, Count: 5}, {Z: 3, Count: 3}, {Z: 4, Count: 2}}
	out := sortedSpecies(in)

	gotZ := make([]int, len(out))
	for i, sc := range out {
		gotZ[i] = sc.Z
	}
	want := []int{2, 1, 3, 4} // count 5 first, then the two count-3 entries in original order, then count 2
	if diff := cmp.Diff(want, gotZ); diff != "" {
		t.Fatalf("sortedSpecies() order mismatch (-want +got):\n%s", diff)
	}
}

func TestAllMultiplicitiesEven(t *testing.T) {
	even := []wyckoff.WP{{Multiplicity: 2}, {Multiplicity: 4}}
	odd := []wyckoff.WP{{Multiplicity: 2}, {Multiplicity: 1}}

	assert.True(t, AllMultiplicitiesEven(even))
	assert.False(t, AllMultiplicitiesEven(odd))
}
