package truthtable

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/propcalc/tautology/wff"
)

func mustParse(t *testing.T, expr string) wff.Formula {
	t.Helper()
	f, err := wff.Parse(expr)
	if err != nil {
		t.Fatalf("could not parse %q: %v", expr, err)
	}
	return f
}

func TestGenerateOrder(t *testing.T) {
	table := Generate(mustParse(t, "B -> A"))
	if !reflect.DeepEqual(table.Variables, []string{"A", "B"}) {
		t.Fatalf("invalid variables %v", table.Variables)
	}
	expected := []Row{
		{map[string]bool{"A": false, "B": false}, true},
		{map[string]bool{"A": false, "B": true}, false},
		{map[string]bool{"A": true, "B": false}, true},
		{map[string]bool{"A": true, "B": true}, true},
	}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("invalid rows: expected %v, got %v", expected, table.Rows)
	}
}

// To each formula, associate the expected number of variables and of rows where it is true.
var counts = map[string][2]int{
	"P":                                 {1, 1},
	"P v ~P":                            {1, 2},
	"P ^ ~P":                            {1, 0},
	"P ^ Q":                             {2, 1},
	"(A -> B) ^ (B -> A)":               {2, 2},
	"(P -> Q) <-> (~Q -> ~P)":           {2, 4},
	"((P -> Q) ^ (Q -> R)) -> (P -> R)": {3, 8},
	"A ^ A ^ A ^ B":                     {2, 1},
	"Z v Y v X v W":                     {4, 15},
}

func TestGenerate(t *testing.T) {
	for expr, expected := range counts {
		table := Generate(mustParse(t, expr))
		if len(table.Variables) != expected[0] {
			t.Errorf("for %q, expected %d variables, got %v", expr, expected[0], table.Variables)
		}
		if !sort.StringsAreSorted(table.Variables) {
			t.Errorf("for %q, variables are not sorted: %v", expr, table.Variables)
		}
		if len(table.Rows) != 1<<len(table.Variables) {
			t.Errorf("for %q, expected %d rows, got %d", expr, 1<<len(table.Variables), len(table.Rows))
		}
		if nb := table.Models(); nb != expected[1] {
			t.Errorf("for %q, expected %d models, got %d", expr, expected[1], nb)
		}
		if table.AllTrue() != (expected[1] == len(table.Rows)) || table.AllFalse() != (expected[1] == 0) {
			t.Errorf("for %q, invalid AllTrue/AllFalse", expr)
		}
	}
}

// The table of a formula's rendering is the table of the formula.
func TestGenerateRendering(t *testing.T) {
	for expr := range counts {
		f := mustParse(t, expr)
		if t1, t2 := Generate(f), Generate(mustParse(t, f.String())); !reflect.DeepEqual(t1, t2) {
			t.Errorf("tables of %q and %q differ", expr, f.String())
		}
	}
}

func ExampleGenerate() {
	f, _ := wff.Parse("P ^ ~Q")
	table := Generate(f)
	fmt.Println(table.Variables)
	for _, row := range table.Rows {
		fmt.Println(row.Assignment["P"], row.Assignment["Q"], row.Result)
	}
	// Output:
	// [P Q]
	// false false false
	// false true false
	// true false true
	// true true false
}
