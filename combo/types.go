package combo

import "github.com/crystalforge/spginit/wyckoff"

// SpeciesCount is one species' required atom count within a composition.
// Z is the atomic number.
type SpeciesCount struct {
	Z     int
	Count int
}

// WyckPick is how many orbits of one similar-Wyckoff group a single
// species uses. GroupIndex indexes into the SysP's Groups slice — every
// WyckPick produced by one Enumerate call shares the same Groups slice, so
// GroupIndex is only meaningful alongside it.
type WyckPick struct {
	GroupIndex int
	Count      int
}

// SAP (single-atom-possibility) is one species' full usage pattern: a set
// of WyckPicks whose multiplicities sum to exactly that species' count.
type SAP struct {
	Species int
	Picks   []WyckPick
}

// SysP (system-possibility) combines one SAP per species into a complete,
// budget-valid covering of the whole composition.
type SysP struct {
	Groups []wyckoff.SimilarGroup
	Picks  []SAP
}

func (p SysP) extend(s SAP) SysP {
	next := SysP{Groups: p.Groups, Picks: make([]SAP, len(p.Picks)+1)}
	copy(next.Picks, p.Picks)
	next.Picks[len(p.Picks)] = s
	return next
}
