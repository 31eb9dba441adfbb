// Package spginit generates random crystal structures constrained to a
// given space group.
//
// Given a space group number (1-230) and a multiset of atomic species,
// InitCrystal samples a lattice consistent with the group's crystal
// system, assigns species to Wyckoff positions under the group's
// multiplicity and site-uniqueness rules, expands each assignment into
// its full symmetry orbit, and places atoms subject to minimum
// interatomic-distance constraints — retrying sampled geometry on
// collision until attempts run out.
//
// The pipeline is organized as a chain of focused packages:
//
//	wyckoff   — the compiled-in Wyckoff position database and per-group views
//	coordexpr — parses and evaluates Wyckoff coordinate expressions ("1/2+x")
//	combo     — enumerates species-to-Wyckoff-group assignment plans
//	latgen    — samples lattice parameters honoring crystal-system constraints
//	assign    — realizes a plan into concrete (WP, species) assignments
//	placement — expands assignments into orbits and places atoms under IAD checks
//	elements  — covalent-radius lookups feeding default IAD scaling
//	crystal   — the resulting structure: lattice, atoms, composition
//	logctx    — structured run logging
//	spginit   — the façade tying all of the above into IsPossible/InitCrystal
//
// The module ships no example programs or batch runner.
package spginit
