// Package crystal holds the data model shared by every placement-engine
// component: Lattice, Atom, and Crystal, plus the minimum interatomic-
// distance (IAD) check and orbit-expansion primitive used to enforce
// it.
//
// Crystal is intentionally ignorant of Wyckoff positions, space groups, and
// coordinate expressions — it only knows how to hold atoms, check a
// candidate atom against the ones already present, and commit or roll back
// a batch of candidate sites as one transaction. Package placement is the
// only caller that knows how a Wyckoff orbit turns into a list of
// candidate fractional coordinates.
//
// Crystal is built and mutated by exactly one goroutine per InitCrystal
// call; it carries no internal locking.
package crystal
