package tableau

import (
	"fmt"
	"testing"

	"github.com/propcalc/tautology/wff"
)

// To each formula, associate the expected rule and successor branches, when expanded in a branch containing only R.
var expansions = map[string]struct {
	rule string
	succ string
}{
	"~~P":        {ruleAlpha, "[[R P]]"},
	"P ^ Q":      {ruleAlpha, "[[R P Q]]"},
	"~(P v Q)":   {ruleAlpha, "[[R (~ P) (~ Q)]]"},
	"~(P -> Q)":  {ruleAlpha, "[[R P (~ Q)]]"},
	"P v Q":      {ruleBeta, "[[R P] [R Q]]"},
	"~(P ^ Q)":   {ruleBeta, "[[R (~ P)] [R (~ Q)]]"},
	"P -> Q":     {ruleBeta, "[[R (~ P)] [R Q]]"},
	"P <-> Q":    {ruleAlpha, "[[R (P -> Q) (Q -> P)]]"},
	"~(P <-> Q)": {ruleBeta, "[[R (~ (P -> Q))] [R (~ (Q -> P))]]"},
}

func TestExpand(t *testing.T) {
	for expr, expected := range expansions {
		f, err := wff.Parse(expr)
		if err != nil {
			t.Fatalf("could not parse %q: %v", expr, err)
		}
		succ, rule := expand(f, branch{wff.Var("R")})
		if rule != expected.rule {
			t.Errorf("for %q, expected %s rule, got %s", expr, expected.rule, rule)
		}
		if str := fmt.Sprint(succ); str != expected.succ {
			t.Errorf("for %q, expected successors %s, got %s", expr, expected.succ, str)
		}
	}
}

// Successors must not share their backing arrays.
func TestExpandCopies(t *testing.T) {
	rest := make(branch, 1, 10)
	rest[0] = wff.Var("R")
	succ, _ := expand(wff.Or(wff.Var("P"), wff.Var("Q")), rest)
	succ[0][1] = wff.Var("X")
	if succ[1][1] != wff.Var("Q") {
		t.Errorf("successors share memory: %v", succ)
	}
}

func TestClosed(t *testing.T) {
	p, q := wff.Var("P"), wff.Var("Q")
	tests := []struct {
		b      branch
		closed bool
	}{
		{branch{}, false},
		{branch{p, q}, false},
		{branch{p, wff.Not(q)}, false},
		{branch{p, wff.Not(p)}, true},
		{branch{wff.Not(p), q, p}, true},
		{branch{p, wff.Not(wff.Not(p))}, false},
		{branch{wff.And(p, wff.Not(p))}, false},
	}
	for _, test := range tests {
		if res := test.b.closed(); res != test.closed {
			t.Errorf("%v: expected closed=%t, got %t", test.b, test.closed, res)
		}
	}
}

func TestQueue(t *testing.T) {
	q := newQueue(branch{wff.Var("A")})
	for _, name := range []string{"B", "C", "D", "E"} {
		q.push(branch{wff.Var(name)})
	}
	var order string
	for q.len() > 0 {
		b := q.pop()
		order += b[0].String()
		if b[0].String() == "B" {
			q.push(branch{wff.Var("F")})
		}
	}
	if order != "ABCDEF" {
		t.Errorf("branches were not processed first-in first-out: %s", order)
	}
}
