package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/propcalc/tautology/present"
)

// A sample is a formula with its expected evaluation.
type sample struct {
	input string
	valid bool                  // Whether the formula is well formed
	class present.Classification // Only meaningful if valid
}

var samples = []sample{
	{"(A -> B) ^ (B -> A)", true, present.Contingency},
	{"A)) ^ -> BC", false, 0},
	{"P v ~P", true, present.Tautology},
	{"P ^ Q", true, present.Contingency},
	{"(P -> Q) <-> (~Q -> ~P)", true, present.Tautology},
	{"((P -> Q) ^ (Q -> R)) -> (P -> R)", true, present.Tautology},
	{"P ^ ~P", true, present.Contradiction},
	{"V", true, present.Contingency},
}

func newSelfTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Evaluate a fixed list of formulas and check the outcomes",
		Args:  cobra.NoArgs,
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			return a.selfTest(cmd.OutOrStdout())
		}),
	}
}

// selfTest evaluates the samples, displaying each result, and fails if any outcome is unexpected.
func (a *app) selfTest(w io.Writer) error {
	nbFailed := 0
	for _, s := range samples {
		res := a.resolver.Evaluate(s.input)
		if err := a.renderer.Render(w, s.input, res); err != nil {
			return err
		}
		var ok bool
		switch {
		case res.Success != s.valid:
			ok = false
		case !res.Success:
			ok = true
		default:
			ok = present.Classify(res) == s.class
		}
		if !ok {
			nbFailed++
			a.log.Error("unexpected outcome", "formula", s.input, "success", res.Success, "error", res.Error)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d/%d samples passed\n", len(samples)-nbFailed, len(samples))
	if nbFailed > 0 {
		return fmt.Errorf("%d samples failed", nbFailed)
	}
	return nil
}
