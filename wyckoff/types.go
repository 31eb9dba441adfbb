package wyckoff

import "github.com/crystalforge/spginit/coordexpr"

// Coord3 is a compiled fractional-coordinate triple: three coordexpr
// expressions, one per axis. It backs both a WP's representative position
// and a FillInfo symmetry operation — the two share exactly the same shape
// because a symmetry operation is itself just a coordinate triple evaluated
// against the representative point's (x, y, z) instead of the free-
// parameter draw.
type Coord3 [3]*coordexpr.Expr

// NewCoord3 compiles three coordinate expressions into a Coord3.
func NewCoord3(x, y, z string) (Coord3, error) {
	ex, err := coordexpr.Compile(x)
	if err != nil {
		return Coord3{}, err
	}
	ey, err := coordexpr.Compile(y)
	if err != nil {
		return Coord3{}, err
	}
	ez, err := coordexpr.Compile(z)
	if err != nil {
		return Coord3{}, err
	}
	return Coord3{ex, ey, ez}, nil
}

// mustCoord3 is NewCoord3 for compiled-in table data: a failure here is a
// build-time defect in this package's own database, never a runtime or
// caller condition, so it panics rather than threading an error back
// through package-level variable initialization.
func mustCoord3(x, y, z string) Coord3 {
	c, err := NewCoord3(x, y, z)
	if err != nil {
		panic("wyckoff: malformed compiled-in coordinate expression: " + err.Error())
	}
	return c
}

// Eval evaluates all three axes at the given free-parameter values.
func (c Coord3) Eval(x, y, z float64) (fx, fy, fz float64, err error) {
	fx, err = c[0].Eval(x, y, z)
	if err != nil {
		return 0, 0, 0, err
	}
	fy, err = c[1].Eval(x, y, z)
	if err != nil {
		return 0, 0, 0, err
	}
	fz, err = c[2].Eval(x, y, z)
	if err != nil {
		return 0, 0, 0, err
	}
	return fx, fy, fz, nil
}

// IsConstant reports whether every axis of c is free-parameter-free, i.e.
// whether this is a unique (not special-with-free-parameter) position.
func (c Coord3) IsConstant() bool {
	return c[0].IsConstant() && c[1].IsConstant() && c[2].IsConstant()
}

// WP is one Wyckoff position of a space group: a letter, the size of its
// orbit within the conventional cell, and its representative coordinate
// triple.
type WP struct {
	Letter       byte
	Multiplicity int
	Coords       Coord3
}

// Unique reports whether this position has no free parameter — the
// "unique" vs. "special"/"general" distinction hinges entirely on this.
func (w WP) Unique() bool {
	return w.Coords.IsConstant()
}

// FillInfo is the orbit-expansion recipe for every Wyckoff position of a
// space group (they all share one recipe, since it follows from the space
// group's symmetry operations and centering, not from any one position).
// Duplications is the full list of centering translations, including the
// zero vector; Positions is the full list of the space group's point-
// symmetry operations expressed as coordinate triples, including the
// identity triple ("x,y,z"), evaluated against a representative point's
// own (x, y, z) rather than a free-parameter draw. Expanding a
// representative point (x0, y0, z0) is: for every duplication d and every
// position p, the candidate site is d + p(x0, y0, z0), reduced mod 1 —
// see package crystal's FillCellWithAtom.
type FillInfo struct {
	Duplications [][3]float64
	Positions    []Coord3
}

// SimilarGroup collects the Wyckoff positions of a space group that share
// the same (multiplicity, uniqueness) pair — the notion of "similar
// Wyckoff positions" the combinatorics solver groups species-candidates by
// (Open Question #1: resolved as structural equality on multiplicity and
// free-parameter-ness, not on letter or coordinate-expression text).
type SimilarGroup struct {
	Multiplicity int
	Unique       bool
	WPs          []WP
}
