package assign

import "errors"

var (
	// ErrForcedAssignmentInvalid indicates a forced_wyck_assignments entry
	// names a letter absent from the space group's table, or a species
	// whose remaining count can't absorb that letter's multiplicity.
	ErrForcedAssignmentInvalid = errors.New("assign: forced Wyckoff assignment is invalid for this space group or composition")

	// ErrGroupExhausted indicates a SysP called for more instances of a
	// unique group than it has distinct letters — unreachable for any
	// SysP produced by combo.Enumerate (which enforces this budget
	// itself), so reaching it here indicates a hand-built or corrupted
	// SysP.
	ErrGroupExhausted = errors.New("assign: unique Wyckoff group exhausted during realization")
)
