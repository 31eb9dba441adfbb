package coordexpr

import "errors"

// Sentinel errors for coordexpr. Per spec, a parse/compile failure is never
// promoted to a configuration error by callers that evaluate expressions
// during a placement attempt — it demotes to a placement failure there,
// because a malformed compiled-in table entry is a build-time defect the
// implementer is expected to catch via tests (see wyckoff's P1 test).
var (
	// ErrEmptyExpr indicates the source string was empty or all whitespace.
	ErrEmptyExpr = errors.New("coordexpr: empty expression")

	// ErrInvalidExpr indicates the source string does not match the
	// term (('+'|'-') term)* grammar.
	ErrInvalidExpr = errors.New("coordexpr: invalid expression")

	// ErrEvalFailed indicates the compiled expr-lang program could not be
	// run against the supplied x, y, z. Unreachable for any Expr produced
	// by Compile on a grammar-conformant source; retained because the
	// underlying VM still reports errors through this path.
	ErrEvalFailed = errors.New("coordexpr: evaluation failed")
)
