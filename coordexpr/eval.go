package coordexpr

import "github.com/expr-lang/expr"

// Eval evaluates the compiled expression at the given free-parameter
// values. Callers are responsible for folding the result into [0, 1) —
// Eval itself performs no wraparound (see package crystal's orbit
// expansion, which applies "mod 1" once per generated site).
//
// Complexity: O(terms) VM dispatch; no allocation on the common path.
func (e *Expr) Eval(x, y, z float64) (float64, error) {
	out, err := expr.Run(e.program, Env{X: x, Y: y, Z: z})
	if err != nil {
		return 0, ErrEvalFailed
	}
	v, ok := out.(float64)
	if !ok {
		return 0, ErrEvalFailed
	}
	return v, nil
}

// UsesAxis reports whether the source expression ever multiplies the given
// axis, independent of the sampled coefficient. This is the primitive
// behind the special/unique classification: a Wyckoff coordinate is free
// iff UsesAxis is true for at least one of x, y, z.
func (e *Expr) UsesAxis(a Axis) bool {
	for _, t := range e.terms {
		if t.axis == a {
			return true
		}
	}
	return false
}

// IsConstant reports whether the expression names no free parameter at all.
func (e *Expr) IsConstant() bool {
	return !e.UsesAxis(AxisX) && !e.UsesAxis(AxisY) && !e.UsesAxis(AxisZ)
}
