package coordexpr

import (
	"strconv"
	"strings"
)

// parseTerms tokenizes raw against the grammar documented in doc.go and
// returns the additive term list. Whitespace anywhere in raw is ignored.
//
// Complexity: O(len(raw)), single left-to-right pass, no backtracking.
func parseTerms(raw string) ([]term, error) {
	src := stripSpace(raw)
	if src == "" {
		return nil, ErrEmptyExpr
	}

	var terms []term
	i, n := 0, len(src)
	first := true

	for i < n {
		// 1. Optional leading sign; required as a separator for every
		//    term after the first.
		sign := 1.0
		switch src[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		default:
			if !first {
				return nil, ErrInvalidExpr
			}
		}
		first = false

		// 2. Optional number: digits, optionally followed by '/digits'
		//    (rational) or '.digits' (decimal).
		numStart := i
		for i < n && isDigit(src[i]) {
			i++
		}
		intPart := src[numStart:i]
		haveNumber := intPart != ""

		var value float64
		if haveNumber {
			v, err := strconv.ParseFloat(intPart, 64)
			if err != nil {
				return nil, ErrInvalidExpr
			}
			value = v
		}

		switch {
		case i < n && src[i] == '.':
			if !haveNumber {
				return nil, ErrInvalidExpr
			}
			i++
			fracStart := i
			for i < n && isDigit(src[i]) {
				i++
			}
			if i == fracStart {
				return nil, ErrInvalidExpr
			}
			v, err := strconv.ParseFloat(intPart+"."+src[fracStart:i], 64)
			if err != nil {
				return nil, ErrInvalidExpr
			}
			value = v
		case i < n && src[i] == '/':
			if !haveNumber {
				return nil, ErrInvalidExpr
			}
			i++
			denStart := i
			for i < n && isDigit(src[i]) {
				i++
			}
			if i == denStart {
				return nil, ErrInvalidExpr
			}
			den, err := strconv.ParseFloat(src[denStart:i], 64)
			if err != nil || den == 0 {
				return nil, ErrInvalidExpr
			}
			value = value / den
		}

		// 3. Optional variable: a single x/y/z letter.
		axis := AxisNone
		if i < n {
			switch src[i] {
			case 'x':
				axis, i = AxisX, i+1
			case 'y':
				axis, i = AxisY, i+1
			case 'z':
				axis, i = AxisZ, i+1
			}
		}

		if !haveNumber && axis == AxisNone {
			return nil, ErrInvalidExpr
		}

		coeff := sign
		if haveNumber {
			coeff = sign * value
		}
		terms = append(terms, term{coeff: coeff, axis: axis})

		// 4. What remains must be a separator for the next term, or EOF.
		if i < n && src[i] != '+' && src[i] != '-' {
			return nil, ErrInvalidExpr
		}
	}

	return terms, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
