package placement

import "errors"

// ErrAttemptsExhausted indicates every attempt to place one Wyckoff
// position failed its IAD check; the caller should discard the Crystal
// under construction and retry with a fresh lattice and/or assignment.
var ErrAttemptsExhausted = errors.New("placement: attempts exhausted for this Wyckoff position")

// DefaultMaxAttempts is the per-position retry budget used when the
// caller doesn't override it.
const DefaultMaxAttempts = 1000
