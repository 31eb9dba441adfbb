package assign

import (
	"github.com/crystalforge/spginit/combo"
	"github.com/crystalforge/spginit/rng"
	"github.com/crystalforge/spginit/wyckoff"
)

// PickSysP uniformly samples one SysP from sysps.
func PickSysP(src rng.Source, sysps []combo.SysP) (combo.SysP, bool) {
	if len(sysps) == 0 {
		return combo.SysP{}, false
	}
	return sysps[src.Int(0, len(sysps)-1)], true
}

// Realize samples a full (WP, Z) assignment list from sp: num_to_choose
// letters per Pick, with replacement for non-unique groups, without
// replacement (and shared across the whole SysP) for unique groups.
func Realize(src rng.Source, sp combo.SysP) ([]Assignment, error) {
	pools := make([][]wyckoff.WP, len(sp.Groups))
	for i, g := range sp.Groups {
		pools[i] = append([]wyckoff.WP(nil), g.WPs...)
	}

	var out []Assignment
	for _, sap := range sp.Picks {
		for _, pick := range sap.Picks {
			group := sp.Groups[pick.GroupIndex]

			if !group.Unique {
				for k := 0; k < pick.Count; k++ {
					i := src.Int(0, len(group.WPs)-1)
					out = append(out, Assignment{WP: group.WPs[i], Z: sap.Species})
				}
				continue
			}

			pool := pools[pick.GroupIndex]
			for k := 0; k < pick.Count; k++ {
				if len(pool) == 0 {
					return nil, ErrGroupExhausted
				}
				i := src.Int(0, len(pool)-1)
				out = append(out, Assignment{WP: pool[i], Z: sap.Species})
				pool = append(pool[:i], pool[i+1:]...)
			}
			pools[pick.GroupIndex] = pool
		}
	}
	return out, nil
}
