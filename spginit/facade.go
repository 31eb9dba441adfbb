package spginit

import (
	"fmt"
	"os"

	"github.com/crystalforge/spginit/assign"
	"github.com/crystalforge/spginit/combo"
	"github.com/crystalforge/spginit/crystal"
	"github.com/crystalforge/spginit/elements"
	"github.com/crystalforge/spginit/latgen"
	"github.com/crystalforge/spginit/logctx"
	"github.com/crystalforge/spginit/placement"
	"github.com/crystalforge/spginit/rng"
	"github.com/crystalforge/spginit/wyckoff"
	"go.uber.org/zap"
)

// IsPossible reports whether spg and atoms could ever be realized on
// some Wyckoff assignment, independent of lattice bounds or IAD radii —
// an even-multiplicity fast-reject plus a stop-at-first-hit run of the
// combinatorics solver.
func IsPossible(spg int, atoms []int) bool {
	if spg < 1 || spg > spgMax {
		return false
	}
	view := wyckoff.Default()
	table, err := view.Table(spg)
	if err != nil {
		return false
	}

	species := Input{Atoms: atoms}.speciesCounts()
	if combo.AllMultiplicitiesEven(table) {
		for _, sc := range species {
			if sc.Count%2 != 0 {
				return false
			}
		}
	}
	return combo.IsPossible(view, spg, species)
}

// InitCrystal attempts to build one Crystal satisfying input. A single
// Wyckoff-position placement failure does not fail the whole call: the
// lattice is sampled once, then each of up to input.maxAttempts() rounds
// draws a fresh SysP and assignment (from a derived rng.Source, so each
// round is an independent reproducible substream) and retries placement
// from scratch. It never panics or returns an error value: every one of
// the three documented failure kinds (configuration, combinatoric
// infeasibility, placement exhaustion across all rounds) collapses to
// crystal.Zero() plus a one-line diagnostic on standard output.
func InitCrystal(input Input) crystal.Crystal {
	log, closeLog := resolveLog(input)
	defer closeLog()

	if input.Spg < 1 || input.Spg > spgMax {
		return fail(log, fmt.Sprintf("configuration error: space group %d out of range [1,%d]", input.Spg, spgMax))
	}

	view := wyckoff.Default()
	species := input.speciesCounts()

	reducedView, remaining, preset, err := assign.ApplyForced(view, input.Spg, species, input.ForcedWyckAssignments)
	if err != nil {
		return fail(log, "configuration error: "+err.Error())
	}

	sysps, err := enumerateSysPs(reducedView, input.Spg, remaining, input.ForceMostGeneralWyckPos, log)
	if err != nil {
		return fail(log, "combinatoric infeasibility: "+err.Error())
	}

	src := input.rngSource()
	lat, err := latgen.Sample(src, input.Spg, input.LatticeMins, input.LatticeMaxes)
	if err != nil {
		return fail(log, "configuration error: "+err.Error())
	}
	if !input.volumeOK(lat.Volume()) {
		return fail(log, "configuration error: sampled lattice volume outside [min_volume, max_volume]")
	}

	radii := elements.DefaultTable(input.MinRadius, input.ManualAtomicRadii)
	radii.ApplyScaling(input.iadScale())
	iad := func(a, b int) float64 { return radii.Radius(a) + radii.Radius(b) }

	fill, err := view.FillInfo(input.Spg)
	if err != nil {
		return fail(log, "configuration error: "+err.Error())
	}

	var lastErr error
	for attempt := 0; attempt < input.maxAttempts(); attempt++ {
		attemptSrc := rng.Derive(src, uint64(attempt))

		sysp, ok := assign.PickSysP(attemptSrc, sysps)
		if !ok {
			return fail(log, "combinatoric infeasibility: no system possibility to pick from")
		}
		assignments, err := assign.Realize(attemptSrc, sysp)
		if err != nil {
			return fail(log, "combinatoric infeasibility: "+err.Error())
		}
		assignments = append(assignments, preset...)

		cr, err := crystal.New(lat, iad)
		if err != nil {
			return fail(log, "configuration error: "+err.Error())
		}

		if err := placement.Place(attemptSrc, cr, fill, assignments, placement.DefaultMaxAttempts); err != nil {
			lastErr = err
			log.Verbose("attempt failed, retrying with a new assignment", zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		log.Results("init_crystal succeeded", zap.Int("spg", input.Spg), zap.Int("atoms", len(cr.Atoms)), zap.Int("attempt", attempt+1))
		return *cr
	}

	return fail(log, fmt.Sprintf("placement failure: exhausted %d attempts: %v", input.maxAttempts(), lastErr))
}

// enumerateSysPs runs combo.Enumerate and, when requested, applies the
// soft force_most_general_wyck_pos filter: prefer SysPs that use the
// space group's highest-multiplicity similar-WP group at least once,
// falling back to the unrestricted result set if that filter is empty.
func enumerateSysPs(view wyckoff.View, spg int, species []combo.SpeciesCount, forceMostGeneral bool, log *logctx.Ctx) ([]combo.SysP, error) {
	sysps, err := combo.Enumerate(view, spg, species)
	if err != nil {
		return nil, err
	}
	if !forceMostGeneral || len(sysps) == 0 {
		return sysps, nil
	}

	groups := sysps[0].Groups
	mostGeneral := 0
	for i, g := range groups {
		if g.Multiplicity > groups[mostGeneral].Multiplicity {
			mostGeneral = i
		}
	}

	var restricted []combo.SysP
	for _, sp := range sysps {
		if usesGroup(sp, mostGeneral) {
			restricted = append(restricted, sp)
		}
	}
	if len(restricted) > 0 {
		return restricted, nil
	}
	log.Verbose("force-most-general: infeasible, falling back")
	return sysps, nil
}

func usesGroup(sp combo.SysP, groupIndex int) bool {
	for _, sap := range sp.Picks {
		for _, pick := range sap.Picks {
			if pick.GroupIndex == groupIndex {
				return true
			}
		}
	}
	return false
}

// resolveLog builds the LogCtx for one InitCrystal call. A caller-supplied
// Input.LogCtx (test override) is used as-is and never closed here, since
// the caller owns its lifetime; otherwise a non-empty LogPath is opened
// for the scope of this call.
func resolveLog(input Input) (*logctx.Ctx, func()) {
	if input.LogCtx != nil {
		return input.LogCtx, func() {}
	}
	if input.LogPath == "" {
		return logctx.Noop(), func() {}
	}
	log, err := logctx.Open(input.LogPath, input.Verbosity)
	if err != nil {
		return log, func() { _ = log.Close() }
	}
	return log, func() { _ = log.Close() }
}

func fail(log *logctx.Ctx, msg string) crystal.Crystal {
	fmt.Fprintln(os.Stdout, msg)
	log.Results(msg)
	return crystal.Zero()
}
