package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/propcalc/tautology/tableau"
	"github.com/propcalc/tautology/wff"
)

// A test describes the expected evaluation of a formula.
type test struct {
	input     string
	tautology bool
	vars      []string
	nbTrue    int // Number of rows where the formula is true
}

var tests = []test{
	{"P v ~P", true, []string{"P"}, 2},
	{"Q v ~Q", true, []string{"Q"}, 2},
	{"V v ~V", true, []string{"V"}, 2},
	{"P ^ ~P", false, []string{"P"}, 0},
	{"P ^ Q", false, []string{"P", "Q"}, 1},
	{"(A -> B) ^ (B -> A)", false, []string{"A", "B"}, 2},
	{"(P -> Q) <-> (~Q -> ~P)", true, []string{"P", "Q"}, 4},
	{"((P -> Q) ^ (Q -> R)) -> (P -> R)", true, []string{"P", "Q", "R"}, 8},
	{"V", false, []string{"V"}, 1},
	{"  ¬(P ∧ Q) ↔ (¬P ∨ ¬Q)  ", true, []string{"P", "Q"}, 4},
}

func TestEvaluate(t *testing.T) {
	for _, test := range tests {
		res := Evaluate(test.input)
		if !res.Success {
			t.Errorf("could not evaluate %q: %s", test.input, res.Error)
			continue
		}
		if res.IsTautology != test.tautology {
			t.Errorf("for %q, expected tautology=%t, got %t", test.input, test.tautology, res.IsTautology)
		}
		table := res.TruthTable
		if !reflect.DeepEqual(table.Variables, test.vars) {
			t.Errorf("for %q, expected variables %v, got %v", test.input, test.vars, table.Variables)
		}
		if len(table.Rows) != 1<<len(table.Variables) {
			t.Errorf("for %q, expected %d rows, got %d", test.input, 1<<len(table.Variables), len(table.Rows))
		}
		if nb := table.Models(); nb != test.nbTrue {
			t.Errorf("for %q, expected %d true rows, got %d", test.input, test.nbTrue, nb)
		}
		if res.IsTautology != table.AllTrue() {
			t.Errorf("for %q, tableau and truth table disagree", test.input)
		}
		if res.Error != "" || res.Err != nil {
			t.Errorf("for %q, successful result holds an error: %v", test.input, res.Err)
		}
	}
}

func TestEvaluateVariablesSorted(t *testing.T) {
	res := Evaluate("Z -> (A v M) ^ A")
	if !res.Success {
		t.Fatalf("could not evaluate: %s", res.Error)
	}
	vars := res.TruthTable.Variables
	if !sort.StringsAreSorted(vars) || len(vars) != 3 {
		t.Errorf("variables should be sorted and unique: %v", vars)
	}
}

func TestEvaluateCounterModel(t *testing.T) {
	res := Evaluate("(P v Q) -> P")
	if !res.Success || res.IsTautology {
		t.Fatalf("unexpected result %+v", res)
	}
	f, err := wff.Parse(res.AST)
	if err != nil {
		t.Fatalf("could not parse %q: %v", res.AST, err)
	}
	if wff.Eval(f, res.CounterModel) {
		t.Errorf("%v is not a counter-model of %s", res.CounterModel, res.AST)
	}
}

func TestEvaluateErrors(t *testing.T) {
	var lerr *wff.LexicalError
	var serr *wff.SyntaxError
	var eerr EmptyInputError
	cases := []struct {
		input  string
		target any
	}{
		{"A)) ^ -> BC", &serr},
		{"P Q", &serr},
		{"(P ^ Q", &serr},
		{"P ^", &serr},
		{"P & Q", &lerr},
		{"p", &lerr},
		{"", &eerr},
		{"  \t\n ", &eerr},
	}
	for _, c := range cases {
		res := Evaluate(c.input)
		if res.Success {
			t.Errorf("%q should be rejected", c.input)
			continue
		}
		if res.Error == "" {
			t.Errorf("for %q, error message is empty", c.input)
		}
		if !errors.As(res.Err, c.target) {
			t.Errorf("for %q, unexpected error type %T: %v", c.input, res.Err, res.Err)
		}
		if res.TruthTable != nil || res.AST != "" || res.IsTautology {
			t.Errorf("for %q, failed result holds data: %+v", c.input, res)
		}
	}
}

func TestEvaluateLimits(t *testing.T) {
	r := New(Options{MaxVariables: 2})
	if res := r.Evaluate("P ^ Q ^ R"); res.Success || !errors.Is(res.Err, tableau.ErrResourceExhausted) {
		t.Errorf("formula with too many variables should be rejected: %+v", res)
	}
	if res := r.Evaluate("P ^ Q"); !res.Success {
		t.Errorf("formula within limits should be accepted: %s", res.Error)
	}
	r = New(Options{Prover: tableau.Options{MaxSteps: 2}})
	res := r.Evaluate("((P -> Q) ^ (Q -> R)) -> (P -> R)")
	if res.Success || !errors.Is(res.Err, tableau.ErrResourceExhausted) {
		t.Errorf("search exceeding its budget should fail: %+v", res)
	}
}

func TestEvaluateDeepNesting(t *testing.T) {
	for _, input := range []string{
		strings.Repeat("(", 1000000) + "P" + strings.Repeat(")", 1000000),
		strings.Repeat("~", 1000000) + "P",
	} {
		res := Evaluate(input)
		var serr *wff.SyntaxError
		if res.Success || !errors.As(res.Err, &serr) {
			t.Errorf("deeply nested formula should be rejected with a syntax error, got %v", res.Err)
		} else if !strings.Contains(res.Error, "nested too deeply") {
			t.Errorf("unexpected error message %q", res.Error)
		}
	}
}

func TestVerify(t *testing.T) {
	r := New(Options{Verify: true})
	for _, test := range tests {
		if res := r.Evaluate(test.input); !res.Success || res.IsTautology != test.tautology {
			t.Errorf("for %q, unexpected verified result %+v", test.input, res)
		}
	}
}

func TestVerifyBadCounterModel(t *testing.T) {
	f, err := wff.Parse("P -> Q")
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	proof := &tableau.Proof{Status: tableau.Invalid, CounterModel: map[string]bool{"P": false, "Q": false}}
	defer func() {
		if recover() == nil {
			t.Errorf("a counter-model satisfying the formula should be detected")
		}
	}()
	New(Options{}).verify(f, proof)
}

func TestEvaluateDeterministic(t *testing.T) {
	r := New(Options{Verify: true})
	for _, input := range []string{"((P -> Q) ^ (Q -> R)) -> (P -> R)", "(A -> B) ^ (B -> A)", "A)) ^ -> BC", ""} {
		first, err := json.Marshal(r.Evaluate(input))
		if err != nil {
			t.Fatalf("could not marshal result: %v", err)
		}
		second, err := json.Marshal(r.Evaluate(input))
		if err != nil {
			t.Fatalf("could not marshal result: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("for %q, results differ:\n%s\n%s", input, first, second)
		}
	}
}

// Evaluating the rendering of a formula gives the same truth table.
func TestEvaluateRendering(t *testing.T) {
	for _, test := range tests {
		res := Evaluate(test.input)
		again := Evaluate(res.AST)
		if !again.Success {
			t.Errorf("could not evaluate rendering %q of %q: %s", res.AST, test.input, again.Error)
		} else if !reflect.DeepEqual(res.TruthTable, again.TruthTable) {
			t.Errorf("truth tables of %q and %q differ", test.input, res.AST)
		}
	}
}

func TestResultJSON(t *testing.T) {
	res := Evaluate("P ^ P")
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("could not marshal: %v", err)
	}
	const expected = `{"success":true,"ast":"(P ^ P)","isTautology":false,` +
		`"truthTable":{"variables":["P"],"rows":[{"assignment":{"P":false},"result":false},{"assignment":{"P":true},"result":true}]},` +
		`"counterModel":{"P":false},"steps":1}`
	if string(b) != expected {
		t.Errorf("unexpected JSON:\n%s\nexpected:\n%s", b, expected)
	}
	b, _ = json.Marshal(Evaluate(""))
	if string(b) != `{"success":false,"error":"empty formula: please enter a propositional formula"}` {
		t.Errorf("unexpected JSON for failure: %s", b)
	}
	var decoded Result
	if err := json.Unmarshal(b, &decoded); err != nil || decoded.Success {
		t.Errorf("could not decode failure: %v", err)
	}
}

func ExampleEvaluate() {
	res := Evaluate("(A -> B) ^ (B -> A)")
	fmt.Println(res.AST, res.IsTautology, res.TruthTable.Variables, len(res.TruthTable.Rows))
	res = Evaluate("A)) ^ -> BC")
	fmt.Println(res.Success, res.Error)
	// Output:
	// ((A -> B) ^ (B -> A)) false [A B] 4
	// false syntax error at position 1: unconsumed input: remaining token RPAREN (")"). check parentheses and operators
}
