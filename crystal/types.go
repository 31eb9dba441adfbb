package crystal

import "errors"

// Sentinel errors for crystal construction and mutation.
var (
	// ErrInvalidLattice indicates a Lattice with a non-positive a, b, c,
	// alpha, beta, or gamma.
	ErrInvalidLattice = errors.New("crystal: lattice parameters must all be positive")

	// ErrNoIADLookup indicates a Crystal was constructed with a nil IAD
	// function.
	ErrNoIADLookup = errors.New("crystal: IAD lookup function is nil")
)

// SiteEpsilon is the fractional-coordinate tolerance below which two sites
// are considered the same point after reduction mod 1. Orbit expansion for
// high-symmetry special positions routinely produces the same point via
// several distinct (duplication, symmetry-operation) combinations (see
// FillCellWithAtom); those must collapse rather than count as an IAD
// violation against itself.
const SiteEpsilon = 1e-6

// Lattice holds the six conventional lattice parameters. a, b, c are
// lengths in the caller's length unit; alpha, beta, gamma are angles in
// degrees.
type Lattice struct {
	A, B, C          float64
	Alpha, Beta, Gam float64
}

// Valid reports whether every lattice parameter is strictly positive.
func (l Lattice) Valid() bool {
	return l.A > 0 && l.B > 0 && l.C > 0 && l.Alpha > 0 && l.Beta > 0 && l.Gam > 0
}

// Volume returns the unit cell volume implied by the six lattice
// parameters, using the general triclinic volume formula (valid for every
// crystal system since the higher-symmetry systems are just special
// cases with some angles fixed at 90 or 120 degrees).
func (l Lattice) Volume() float64 {
	ca := cosDeg(l.Alpha)
	cb := cosDeg(l.Beta)
	cg := cosDeg(l.Gam)
	inner := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if inner < 0 {
		inner = 0
	}
	return l.A * l.B * l.C * sqrt(inner)
}

// Atom is one site in the unit cell: an atomic number and fractional
// coordinates, each expected to lie in [0, 1).
type Atom struct {
	Z          int
	Fx, Fy, Fz float64
}

// IADLookup returns the minimum allowed distance between an atom of
// species a and one of species b, already including any caller-side
// scaling. Crystal never interprets the numbers itself — it is purely a
// collaborator contract; package elements supplies the default
// implementation.
type IADLookup func(a, b int) float64

// Crystal is the periodic unit cell under construction: a lattice plus the
// atoms placed so far. It is built by exactly one placement attempt and is
// not safe for concurrent use.
type Crystal struct {
	Lattice Lattice
	Atoms   []Atom

	iad IADLookup
}

// New constructs an empty Crystal over the given lattice, backed by the
// given IAD lookup. Returns ErrInvalidLattice / ErrNoIADLookup rather than
// panicking: an infeasible lattice is a normal, expected outcome of the
// lattice sampler, not a programmer error.
func New(lat Lattice, iad IADLookup) (*Crystal, error) {
	if !lat.Valid() {
		return nil, ErrInvalidLattice
	}
	if iad == nil {
		return nil, ErrNoIADLookup
	}
	return &Crystal{Lattice: lat, iad: iad}, nil
}

// Zero returns the conventional zero-volume sentinel Crystal used
// throughout this module to signal failure.
func Zero() Crystal {
	return Crystal{}
}

// IsZero reports whether c is the zero-volume failure sentinel.
func (c Crystal) IsZero() bool {
	return c.Lattice.Volume() == 0
}

// Composition returns the multiset of atomic numbers currently present,
// as counts per species.
func (c *Crystal) Composition() map[int]int {
	out := make(map[int]int, len(c.Atoms))
	for _, a := range c.Atoms {
		out[a.Z]++
	}
	return out
}
