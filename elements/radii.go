package elements

// defaultTable is the builtin Radii implementation: a base covalent-radius
// table, manual per-species overrides, a floor, and a scale applied on
// every lookup.
type defaultTable struct {
	base      map[int]float64
	manual    map[int]float64
	minRadius float64
	scale     float64
}

// DefaultTable builds the package's default Radii, seeded from builtinRadii,
// with manual overriding any entry (or adding a species absent from
// builtinRadii) and minRadius acting as a post-scaling floor.
func DefaultTable(minRadius float64, manual []Override) Radii {
	m := make(map[int]float64, len(manual))
	for _, o := range manual {
		m[o.Z] = o.Radius
	}
	return &defaultTable{
		base:      builtinRadii,
		manual:    m,
		minRadius: minRadius,
		scale:     1.0,
	}
}

func (d *defaultTable) Radius(z int) float64 {
	r, ok := d.manual[z]
	if !ok {
		r, ok = d.base[z]
	}
	if !ok {
		r = fallbackRadius
	}
	r *= d.scale
	if r < d.minRadius {
		r = d.minRadius
	}
	return r
}

func (d *defaultTable) ApplyScaling(s float64) {
	d.scale = s
}
