package combo

import (
	"sort"

	"github.com/crystalforge/spginit/wyckoff"
)

// Enumerate returns every SysP covering species exactly, under spg's
// Wyckoff positions (view). Species are processed most-abundant-first,
// ties broken by input order.
func Enumerate(view wyckoff.View, spg int, species []SpeciesCount) ([]SysP, error) {
	return enumerate(view, spg, species, false)
}

// IsPossible reports whether at least one SysP covers species under spg,
// stopping the search at the first hit instead of enumerating every plan.
func IsPossible(view wyckoff.View, spg int, species []SpeciesCount) bool {
	sysps, err := enumerate(view, spg, species, true)
	return err == nil && len(sysps) > 0
}

// AllMultiplicitiesEven reports whether every Wyckoff position of table
// has even multiplicity — the fast-reject precondition spginit.IsPossible
// checks before running the search (combo.IsPossible itself does not).
func AllMultiplicitiesEven(table []wyckoff.WP) bool {
	for _, wp := range table {
		if wp.Multiplicity%2 != 0 {
			return false
		}
	}
	return true
}

func sortedSpecies(species []SpeciesCount) []SpeciesCount {
	out := make([]SpeciesCount, len(species))
	copy(out, species)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func enumerate(view wyckoff.View, spg int, species []SpeciesCount, stopAfterFirst bool) ([]SysP, error) {
	table, err := view.Table(spg)
	if err != nil {
		return nil, err
	}
	groups := wyckoff.GroupsOf(table)

	ordered := sortedSpecies(species)
	partial := []SysP{{Groups: groups}}

	for i, sc := range ordered {
		isLast := i == len(ordered)-1

		var saps []SAP
		if !isLast {
			saps = enumerateSpecies(groups, sc.Count, true, stopAfterFirst)
			if len(saps) == 0 {
				saps = enumerateSpecies(groups, sc.Count, false, stopAfterFirst)
			}
		} else {
			saps = enumerateSpecies(groups, sc.Count, false, stopAfterFirst)
		}
		if len(saps) == 0 {
			return nil, ErrNoPossibility
		}

		var next []SysP
		for _, p := range partial {
			for _, s := range saps {
				s.Species = sc.Z
				if !budgetOK(p, s, groups) {
					continue
				}
				next = append(next, p.extend(s))
				if stopAfterFirst {
					break
				}
			}
			if stopAfterFirst && len(next) > 0 {
				break
			}
		}
		if len(next) == 0 {
			return nil, ErrNoPossibility
		}
		partial = next
	}

	return partial, nil
}

// budgetOK reports whether adding candidate to partial keeps every unique
// group's total usage within the number of distinct letters it has —
// the one constraint that couples species together.
func budgetOK(partial SysP, candidate SAP, groups []wyckoff.SimilarGroup) bool {
	usage := make(map[int]int)
	for _, sap := range partial.Picks {
		for _, pick := range sap.Picks {
			usage[pick.GroupIndex] += pick.Count
		}
	}
	for _, pick := range candidate.Picks {
		usage[pick.GroupIndex] += pick.Count
	}
	for idx, total := range usage {
		if groups[idx].Unique && total > len(groups[idx].WPs) {
			return false
		}
	}
	return true
}
