package tableau

import (
	"slices"

	"github.com/propcalc/tautology/wff"
)

// closed returns true iff b contains both an atom and its negation.
func (b branch) closed() bool {
	pos := make(map[string]bool)
	neg := make(map[string]bool)
	for _, f := range b {
		switch f := f.(type) {
		case wff.Atom:
			if neg[f.Name] {
				return true
			}
			pos[f.Name] = true
		case wff.Negation:
			if a, ok := f.Operand.(wff.Atom); ok {
				if pos[a.Name] {
					return true
				}
				neg[a.Name] = true
			}
		}
	}
	return false
}

// compound returns the index of the first formula of b that is not a literal, or -1 if there is none.
func (b branch) compound() int {
	return slices.IndexFunc(b, func(f wff.Formula) bool { return !wff.IsLiteral(f) })
}

// without returns a copy of b, minus its formula at index i.
func (b branch) without(i int) branch {
	res := make(branch, 0, len(b)-1)
	res = append(res, b[:i]...)
	return append(res, b[i+1:]...)
}

// with returns a new branch made of b followed by fs.
func (b branch) with(fs ...wff.Formula) branch {
	return slices.Concat(b, branch(fs))
}

// model returns the assignment described by the literals of b.
// Variables from vars that do not appear in b are bound to false.
func (b branch) model(vars []string) map[string]bool {
	m := make(map[string]bool, len(vars))
	for _, v := range vars {
		m[v] = false
	}
	for _, f := range b {
		if a, ok := f.(wff.Atom); ok {
			m[a.Name] = true
		}
	}
	return m
}
