package combo

import "github.com/crystalforge/spginit/wyckoff"

// trackerEntry is one similar-Wyckoff group's usage state within a single
// species' DFS.
type trackerEntry struct {
	numUsed   int
	keepUsing bool
}

// speciesEngine holds the mutable search state for one species' DFS. It
// mutates tracker in place and restores it on the way back up rather
// than copying state per recursive branch.
type speciesEngine struct {
	groups          []wyckoff.SimilarGroup
	tracker         []trackerEntry
	count           int
	preferNonUnique bool
	stopAfterFirst  bool

	found   bool
	results []SAP
}

func newSpeciesEngine(groups []wyckoff.SimilarGroup, count int, preferNonUnique, stopAfterFirst bool) *speciesEngine {
	tracker := make([]trackerEntry, len(groups))
	for i := range tracker {
		tracker[i].keepUsing = true
	}
	return &speciesEngine{
		groups:          groups,
		tracker:         tracker,
		count:           count,
		preferNonUnique: preferNonUnique,
		stopAfterFirst:  stopAfterFirst,
	}
}

func (e *speciesEngine) sumUsed() int {
	total := 0
	for i, t := range e.tracker {
		total += e.groups[i].Multiplicity * t.numUsed
	}
	return total
}

// firstKeepUsing returns the index of the first tracker entry still open
// for consideration in this branch, or -1 if none remain.
func (e *speciesEngine) firstKeepUsing() int {
	for i, t := range e.tracker {
		if t.keepUsing {
			return i
		}
	}
	return -1
}

// anyUsableNonUnique reports whether some non-unique entry, still open for
// consideration, has a multiplicity that fits within the remainder left
// (it could be used at least once; it need not cover left on its own).
func (e *speciesEngine) anyUsableNonUnique(left int) bool {
	for i, t := range e.tracker {
		if !t.keepUsing || e.groups[i].Unique {
			continue
		}
		if e.groups[i].Multiplicity <= left {
			return true
		}
	}
	return false
}

// emit records the tracker's current usage counts as one completed SAP.
func (e *speciesEngine) emit() {
	var picks []WyckPick
	for i, t := range e.tracker {
		if t.numUsed > 0 {
			picks = append(picks, WyckPick{GroupIndex: i, Count: t.numUsed})
		}
	}
	e.results = append(e.results, SAP{Picks: picks})
	if e.stopAfterFirst {
		e.found = true
	}
}

// search is the recursive DFS step: compute the remaining count, emit a
// leaf or backtrack, else branch on "use the first open entry once more"
// and "close the first open entry for good".
func (e *speciesEngine) search() {
	if e.stopAfterFirst && e.found {
		return
	}

	left := e.count - e.sumUsed()
	if left == 0 {
		e.emit()
		return
	}
	if left < 0 {
		return
	}

	idx := e.firstKeepUsing()
	if idx == -1 {
		return
	}

	entry := &e.tracker[idx]
	group := e.groups[idx]
	usable := group.Multiplicity <= left && (!group.Unique || entry.numUsed < len(group.WPs))

	// find_only_non_unique: defer a usable unique entry while some open
	// non-unique entry still fits within the remainder.
	if usable && e.preferNonUnique && group.Unique && e.anyUsableNonUnique(left) {
		usable = false
	}

	if usable {
		entry.numUsed++
		e.search()
		entry.numUsed--
		if e.stopAfterFirst && e.found {
			return
		}
	}

	entry.keepUsing = false
	e.search()
	entry.keepUsing = true
}

// enumerateSpecies runs the per-species DFS and returns every SAP found
// (or, with stopAfterFirst, at most one).
func enumerateSpecies(groups []wyckoff.SimilarGroup, count int, preferNonUnique, stopAfterFirst bool) []SAP {
	e := newSpeciesEngine(groups, count, preferNonUnique, stopAfterFirst)
	e.search()
	return e.results
}
