package tableau

import "github.com/propcalc/tautology/wff"

// Names of the rules, as reported in traces.
const (
	ruleAlpha = "alpha"
	ruleBeta  = "beta"
)

// expand applies the tableau rule matching f, a formula that is not a literal.
// rest is the branch f was taken from, minus f.
// It returns the successor branches and the kind of rule that was applied.
func expand(f wff.Formula, rest branch) ([]branch, string) {
	switch f := f.(type) {
	case wff.Binary:
		switch f.Op {
		case wff.OpAnd:
			return alpha(rest, f.Left, f.Right)
		case wff.OpOr:
			return beta(rest, f.Left, f.Right)
		case wff.OpImplies:
			return beta(rest, wff.Not(f.Left), f.Right)
		case wff.OpIff:
			// Rewritten as a conjunction of implications, and expanded as such.
			return alpha(rest, wff.Implies(f.Left, f.Right), wff.Implies(f.Right, f.Left))
		default:
			panic("invalid operator")
		}
	case wff.Negation:
		return expandNeg(f.Operand, rest)
	default:
		panic("invalid formula type")
	}
}

// expandNeg expands the negation of f.
func expandNeg(f wff.Formula, rest branch) ([]branch, string) {
	switch f := f.(type) {
	case wff.Negation:
		return alpha(rest, f.Operand)
	case wff.Binary:
		switch f.Op {
		case wff.OpAnd:
			return beta(rest, wff.Not(f.Left), wff.Not(f.Right))
		case wff.OpOr:
			return alpha(rest, wff.Not(f.Left), wff.Not(f.Right))
		case wff.OpImplies:
			return alpha(rest, f.Left, wff.Not(f.Right))
		case wff.OpIff:
			// Rewritten as a disjunction of negated implications, and expanded as such.
			return beta(rest, wff.Not(wff.Implies(f.Left, f.Right)), wff.Not(wff.Implies(f.Right, f.Left)))
		default:
			panic("invalid operator")
		}
	case wff.Atom:
		panic("negated atom is a literal")
	default:
		panic("invalid formula type")
	}
}

// alpha returns the only successor of rest, where all formulas in fs hold.
func alpha(rest branch, fs ...wff.Formula) ([]branch, string) {
	return []branch{rest.with(fs...)}, ruleAlpha
}

// beta returns two successors of rest, one where f1 holds, the other where f2 holds.
func beta(rest branch, f1, f2 wff.Formula) ([]branch, string) {
	return []branch{rest.with(f1), rest.with(f2)}, ruleBeta
}
