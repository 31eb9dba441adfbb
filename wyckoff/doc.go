// Package wyckoff holds the compiled-in Wyckoff position database for a
// curated subset of space groups: P1 (1), P-1 (2, simplified to its
// general position only), P2 (3), P2₁2₁2₁ (19), P3 (143), Fm-3m (225),
// and Fd-3m (227, reduced to its diamond 8a orbit).
//
// A WP is a Wyckoff position: a letter, a multiplicity, and a coordinate
// triple (package coordexpr expressions) describing one representative
// point of the orbit in terms of up to three free parameters. A FillInfo
// is the recipe for expanding one representative point into the position's
// full symmetry orbit: a set of centering duplications and a set of
// coordinate-triple symmetry operations applied to the representative
// ("duplications x positions"; the zero shift and the identity triple are
// listed explicitly in both).
//
// View is the read side other packages depend on; StaticView is the only
// implementation, built once by Default and safe for concurrent reads —
// it never mutates after construction.
package wyckoff
