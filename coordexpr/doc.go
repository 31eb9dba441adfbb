// Package coordexpr parses and evaluates a single Cartesian component of a
// Wyckoff coordinate string: a linear expression in x, y, z with rational or
// decimal coefficients.
//
// Grammar (as specified by the Wyckoff database format):
//
//	expr    = term ( ('+' | '-') term )*
//	term    = [sign] [number] [variable]
//	variable = 'x' | 'y' | 'z' | ε
//	number  = digits ['/' digits] | digits '.' digits
//
// A bare variable ("x") has an implicit coefficient of 1. A bare number with
// no variable ("1/2") is a constant term. There is no operator precedence
// beyond left-to-right addition/subtraction — multiplication is only ever
// "coefficient times one variable", never variable-times-variable.
//
// Compile builds an explicit AST once per Wyckoff coordinate string at
// database-load time (see package wyckoff), then lowers it into a compiled
// github.com/expr-lang/expr program so repeated per-draw evaluation costs a
// single VM dispatch instead of a second hand-rolled interpreter.
//
// Complexity: Compile is O(len(src)); Expr.Eval is O(terms) per call, with
// the expr-lang VM adding a small constant-factor dispatch cost in exchange
// for not hand-rolling arithmetic.
package coordexpr
