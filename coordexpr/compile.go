package coordexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expr-lang evaluation environment: one float64 per free
// Wyckoff parameter. Fields must be exported for expr-lang's reflection-
// based compiler to see them.
type Env struct {
	X, Y, Z float64
}

// Expr is a compiled coordinate expression. Construct one with Compile;
// the zero value is not usable.
type Expr struct {
	src     string
	terms   []term
	program *vm.Program
}

// Source returns the original source string, trimmed of surrounding
// whitespace.
func (e *Expr) Source() string { return e.src }

// Compile parses src against the grammar in doc.go and lowers it into a
// compiled expr-lang program, so repeated Eval calls pay only VM dispatch
// cost, never re-parsing cost.
//
// Complexity: O(len(src)).
func Compile(src string) (*Expr, error) {
	terms, err := parseTerms(src)
	if err != nil {
		return nil, err
	}

	program, err := expr.Compile(render(terms), expr.Env(Env{}))
	if err != nil {
		// render() always emits valid expr-lang syntax for a term list
		// parseTerms produced, so reaching here indicates an expr-lang
		// environment/version mismatch rather than a grammar problem —
		// still surfaced as ErrInvalidExpr, the same error Compile
		// returns for a malformed non-empty source.
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpr, src, err)
	}

	return &Expr{src: strings.TrimSpace(src), terms: terms, program: program}, nil
}

// render turns a term list into an explicit, operator-disambiguated
// expr-lang source string: "2x" -> "(2.0)*X", "1/2" -> "(0.5)",
// "-x+y" -> "(-1.0)*X + (1.0)*Y". Every literal carries a decimal point so
// expr-lang's type checker treats every operand as float64 — mixing int
// and float64 literals would otherwise make "1/2" evaluate via integer
// division.
func render(terms []term) string {
	if len(terms) == 0 {
		return "0.0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		coeff := strconv.FormatFloat(t.coeff, 'g', -1, 64)
		if !strings.ContainsAny(coeff, ".eE") {
			coeff += ".0"
		}
		if t.axis == AxisNone {
			parts[i] = fmt.Sprintf("(%s)", coeff)
			continue
		}
		parts[i] = fmt.Sprintf("(%s)*%s", coeff, strings.ToUpper(t.axis.String()))
	}
	return strings.Join(parts, " + ")
}
