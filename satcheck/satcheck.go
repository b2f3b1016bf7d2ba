// Package satcheck decides the validity of formulas with the gophersat SAT solver.
//
// It gives an answer independent from the tableau prover: a formula is valid iff its
// negation, translated to CNF, is unsatisfiable.
package satcheck

import (
	"github.com/crillab/gophersat/bf"

	"github.com/propcalc/tautology/wff"
)

// Translate returns the gophersat equivalent of f.
func Translate(f wff.Formula) bf.Formula {
	switch f := f.(type) {
	case wff.Atom:
		return bf.Var(f.Name)
	case wff.Negation:
		return bf.Not(Translate(f.Operand))
	case wff.Binary:
		l, r := Translate(f.Left), Translate(f.Right)
		switch f.Op {
		case wff.OpAnd:
			return bf.And(l, r)
		case wff.OpOr:
			return bf.Or(l, r)
		case wff.OpImplies:
			return bf.Implies(l, r)
		case wff.OpIff:
			return bf.Eq(l, r)
		default:
			panic("invalid operator")
		}
	default:
		panic("invalid formula type")
	}
}

// Valid returns true iff f is a tautology.
// If it is not, it also returns a counter-model binding every variable of f.
func Valid(f wff.Formula) (bool, map[string]bool) {
	model := bf.Solve(bf.Not(Translate(f)))
	if model == nil {
		return true, nil
	}
	res := make(map[string]bool)
	for _, v := range wff.Vars(f) {
		res[v] = model[v] // Variables the solver did not bind can take any value.
	}
	return false, res
}
