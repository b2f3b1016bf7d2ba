package wff

import (
	"fmt"
	"sort"
)

// Eval returns the truth value of f under the given model.
// It panics if the model lacks a binding for one of f's atoms.
func Eval(f Formula, model map[string]bool) bool {
	switch f := f.(type) {
	case Atom:
		b, ok := model[f.Name]
		if !ok {
			panic(fmt.Errorf("model lacks binding for variable %s", f.Name))
		}
		return b
	case Negation:
		return !Eval(f.Operand, model)
	case Binary:
		l := Eval(f.Left, model)
		r := Eval(f.Right, model)
		switch f.Op {
		case OpAnd:
			return l && r
		case OpOr:
			return l || r
		case OpImplies:
			return !l || r
		case OpIff:
			return l == r
		default:
			panic("invalid operator")
		}
	default:
		panic("invalid formula type")
	}
}

// Vars returns the names of the atoms appearing in f, sorted and without duplicates.
func Vars(f Formula) []string {
	seen := make(map[string]struct{})
	collectVars(f, seen)
	res := make([]string, 0, len(seen))
	for name := range seen {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func collectVars(f Formula, seen map[string]struct{}) {
	switch f := f.(type) {
	case Atom:
		seen[f.Name] = struct{}{}
	case Negation:
		collectVars(f.Operand, seen)
	case Binary:
		collectVars(f.Left, seen)
		collectVars(f.Right, seen)
	default:
		panic("invalid formula type")
	}
}
