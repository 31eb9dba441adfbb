package wyckoff

// GroupsOf partitions table into SimilarGroups, preserving the order each
// (multiplicity, uniqueness) pair first appears in table — the database's
// own letter ordering, which the combinatorics solver's species-most-
// abundant-first rule depends on for determinism.
func GroupsOf(table []WP) []SimilarGroup {
	var groups []SimilarGroup
	index := make(map[[2]int]int) // (multiplicity, uniqueBit) -> index into groups

	for _, wp := range table {
		uniqueBit := 0
		if wp.Unique() {
			uniqueBit = 1
		}
		key := [2]int{wp.Multiplicity, uniqueBit}

		if i, ok := index[key]; ok {
			groups[i].WPs = append(groups[i].WPs, wp)
			continue
		}

		index[key] = len(groups)
		groups = append(groups, SimilarGroup{
			Multiplicity: wp.Multiplicity,
			Unique:       wp.Unique(),
			WPs:          []WP{wp},
		})
	}

	return groups
}
