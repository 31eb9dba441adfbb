package wyckoff

import "errors"

// ErrUnknownSpg indicates View was asked for a space group number outside
// its compiled-in database.
var ErrUnknownSpg = errors.New("wyckoff: unknown space group")
