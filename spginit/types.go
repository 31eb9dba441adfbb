package spginit

import (
	"github.com/crystalforge/spginit/assign"
	"github.com/crystalforge/spginit/combo"
	"github.com/crystalforge/spginit/crystal"
	"github.com/crystalforge/spginit/elements"
	"github.com/crystalforge/spginit/logctx"
	"github.com/crystalforge/spginit/rng"
)

// DefaultMaxAttempts is the Input.MaxAttempts value used when the caller
// leaves it at the zero value.
const DefaultMaxAttempts = 100

// Input is SpgInitInput: everything InitCrystal needs to attempt one
// structure.
type Input struct {
	Spg   int
	Atoms []int // one entry per atom; e.g. TiO2 -> [22, 8, 8]

	LatticeMins, LatticeMaxes crystal.Lattice

	IADScalingFactor  float64 // default 1.0 (zero value is treated as unset)
	MinRadius         float64
	ManualAtomicRadii []elements.Override

	MinVolume, MaxVolume float64 // -1 disables the bound

	ForcedWyckAssignments []assign.Forced

	// LogPath is the process-global log path. Empty disables file
	// logging; InitCrystal opens it for the scope of this call and
	// closes it before returning — scoped acquisition, guaranteed
	// release.
	LogPath     string
	Verbosity   logctx.Verbosity
	MaxAttempts int // default DefaultMaxAttempts when zero

	// ForceMostGeneralWyckPos, when true, prefers a SysP that uses the
	// space group's highest-multiplicity similar-WP group at least once
	// (see the façade's soft-constraint filter), falling back to an
	// unrestricted search if no such SysP exists. The Go zero value
	// (false) disables the preference, so callers opt in explicitly.
	ForceMostGeneralWyckPos bool

	// Rng and LogCtx are injectable collaborators; nil selects the
	// package defaults (rng.Default(1); for LogCtx, a sink opened at
	// LogPath, or a no-op sink when LogPath is empty).
	Rng    rng.Source
	LogCtx *logctx.Ctx
}

func (in Input) iadScale() float64 {
	if in.IADScalingFactor == 0 {
		return 1.0
	}
	return in.IADScalingFactor
}

func (in Input) maxAttempts() int {
	if in.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return in.MaxAttempts
}

func (in Input) rngSource() rng.Source {
	if in.Rng != nil {
		return in.Rng
	}
	return rng.Default(1)
}

func (in Input) volumeOK(v float64) bool {
	if in.MinVolume >= 0 && v < in.MinVolume {
		return false
	}
	if in.MaxVolume >= 0 && v > in.MaxVolume {
		return false
	}
	return true
}

// speciesCounts collapses Atoms (one entry per atom) into combo's
// per-species composition, preserving each species' first-appearance
// order (combo re-sorts by count itself; order here only affects ties).
func (in Input) speciesCounts() []combo.SpeciesCount {
	counts := make(map[int]int)
	var order []int
	for _, z := range in.Atoms {
		if _, ok := counts[z]; !ok {
			order = append(order, z)
		}
		counts[z]++
	}
	out := make([]combo.SpeciesCount, len(order))
	for i, z := range order {
		out[i] = combo.SpeciesCount{Z: z, Count: counts[z]}
	}
	return out
}
