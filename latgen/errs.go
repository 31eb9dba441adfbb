package latgen

import "errors"

// ErrInfeasibleBounds indicates the caller-supplied lattice-parameter
// bounds cannot satisfy the requested space group's crystal-system
// constraints: either a forced-equal length group's windows don't
// intersect, or a forced angle falls outside its window.
var ErrInfeasibleBounds = errors.New("latgen: bounds infeasible for this space group's crystal system")
