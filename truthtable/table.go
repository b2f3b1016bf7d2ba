// Package truthtable computes the truth table of propositional formulas.
package truthtable

import "github.com/propcalc/tautology/wff"

// A Row is the value of a formula under one assignment of its variables.
type Row struct {
	Assignment map[string]bool `json:"assignment"`
	Result     bool            `json:"result"`
}

// A Table lists the value of a formula under every assignment of its variables.
// Variables are sorted; there are 2^len(Variables) rows.
type Table struct {
	Variables []string `json:"variables"`
	Rows      []Row    `json:"rows"`
}

// Generate returns the truth table of f.
// Row i binds the j-th variable to the (n-1-j)-th bit of i, n being the number of variables,
// so that the first variable is the most significant one: rows go from all-false to all-true.
func Generate(f wff.Formula) Table {
	vars := wff.Vars(f)
	n := len(vars)
	rows := make([]Row, 1<<n)
	for i := range rows {
		model := make(map[string]bool, n)
		for j, v := range vars {
			model[v] = (i>>(n-1-j))&1 == 1
		}
		rows[i] = Row{Assignment: model, Result: wff.Eval(f, model)}
	}
	return Table{Variables: vars, Rows: rows}
}

// AllTrue returns true iff the formula is true on every row.
func (t Table) AllTrue() bool {
	for _, r := range t.Rows {
		if !r.Result {
			return false
		}
	}
	return true
}

// AllFalse returns true iff the formula is false on every row.
func (t Table) AllFalse() bool {
	for _, r := range t.Rows {
		if r.Result {
			return false
		}
	}
	return true
}

// Models returns the number of rows where the formula is true.
func (t Table) Models() int {
	nb := 0
	for _, r := range t.Rows {
		if r.Result {
			nb++
		}
	}
	return nb
}
