package combo

import "errors"

// ErrNoPossibility indicates no SysP exists covering the requested
// composition under this space group's Wyckoff positions.
var ErrNoPossibility = errors.New("combo: no possibility exists for this composition under the requested space group")
