package assign

import (
	"github.com/crystalforge/spginit/combo"
	"github.com/crystalforge/spginit/wyckoff"
)

// ApplyForced validates every forced assignment against spg's table,
// converts each into a preset Assignment, and returns a reduced view of
// the space group's table (forced letters removed, so combo.Enumerate
// never reconsiders them) plus the species list with each forced species'
// count reduced by the multiplicity already spoken for.
//
// Complexity: O(|table| + |forced| + |species|).
func ApplyForced(view wyckoff.View, spg int, species []combo.SpeciesCount, forced []Forced) (wyckoff.View, []combo.SpeciesCount, []Assignment, error) {
	if len(forced) == 0 {
		return view, species, nil, nil
	}

	table, err := view.Table(spg)
	if err != nil {
		return nil, nil, nil, err
	}
	fillInfo, err := view.FillInfo(spg)
	if err != nil {
		return nil, nil, nil, err
	}

	byLetter := make(map[byte]wyckoff.WP, len(table))
	for _, wp := range table {
		byLetter[wp.Letter] = wp
	}

	remainingCounts := make(map[int]int, len(species))
	order := make([]int, 0, len(species))
	for _, sc := range species {
		if _, ok := remainingCounts[sc.Z]; !ok {
			order = append(order, sc.Z)
		}
		remainingCounts[sc.Z] += sc.Count
	}

	excluded := make(map[byte]bool, len(forced))
	preset := make([]Assignment, 0, len(forced))

	for _, f := range forced {
		wp, ok := byLetter[f.Letter]
		if !ok {
			return nil, nil, nil, ErrForcedAssignmentInvalid
		}
		left, ok := remainingCounts[f.Z]
		if !ok || left < wp.Multiplicity {
			return nil, nil, nil, ErrForcedAssignmentInvalid
		}
		remainingCounts[f.Z] = left - wp.Multiplicity
		excluded[f.Letter] = true
		preset = append(preset, Assignment{WP: wp, Z: f.Z})
	}

	remaining := make([]combo.SpeciesCount, 0, len(order))
	for _, z := range order {
		if c := remainingCounts[z]; c > 0 {
			remaining = append(remaining, combo.SpeciesCount{Z: z, Count: c})
		}
	}

	reducedTable := make([]wyckoff.WP, 0, len(table))
	for _, wp := range table {
		if !excluded[wp.Letter] {
			reducedTable = append(reducedTable, wp)
		}
	}

	reducedView := wyckoff.NewStatic(
		map[int][]wyckoff.WP{spg: reducedTable},
		map[int]wyckoff.FillInfo{spg: fillInfo},
	)
	return reducedView, remaining, preset, nil
}
