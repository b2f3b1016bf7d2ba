// Package resolver is the entry point of the formula engine.
// It parses a formula, decides whether it is a tautology and computes its truth table,
// turning every failure into a Result rather than an error.
package resolver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/propcalc/tautology/satcheck"
	"github.com/propcalc/tautology/tableau"
	"github.com/propcalc/tautology/truthtable"
	"github.com/propcalc/tautology/wff"
)

// EmptyInputError is returned for blank formulas.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "empty formula: please enter a propositional formula"
}

// Result is the outcome of the evaluation of a formula.
// When Success is false, only Error (and Err) are set.
type Result struct {
	Success      bool              `json:"success"`
	AST          string            `json:"ast,omitempty"`
	IsTautology  bool              `json:"isTautology"`
	TruthTable   *truthtable.Table `json:"truthTable,omitempty"`
	CounterModel map[string]bool   `json:"counterModel,omitempty"`
	Steps        int               `json:"steps,omitempty"`
	Error        string            `json:"error,omitempty"`
	// Err is the error Error was built from.
	Err error `json:"-"`
}

// MarshalJSON encodes a failed result as its success flag and error message only.
func (res Result) MarshalJSON() ([]byte, error) {
	if !res.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, res.Error})
	}
	type result Result // Same fields, without this method
	return json.Marshal(result(res))
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error(), Err: err}
}

// Options tune the evaluation of formulas.
// The zero value means no limits, no cross-check and no logs.
type Options struct {
	Prover tableau.Options
	// MaxVariables is the maximum number of variables a formula can have. 0 means no limit.
	// The truth table has 2^n rows: this bounds the memory used.
	MaxVariables int
	// Verify makes the tableau verdict checked against the SAT solver.
	Verify bool
	Logger *slog.Logger
}

// A Resolver evaluates formulas.
type Resolver struct {
	opts   Options
	prover *tableau.Prover
	log    *slog.Logger
}

// New returns a resolver using the given options.
func New(opts Options) *Resolver {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Prover.Logger == nil {
		opts.Prover.Logger = log
	}
	return &Resolver{opts: opts, prover: tableau.New(opts.Prover), log: log}
}

// Evaluate evaluates the given formula with default options.
func Evaluate(input string) Result {
	return New(Options{}).Evaluate(input)
}

// Evaluate parses input, decides whether it is a tautology and computes its truth table.
// It never panics on user input: lexical, syntax, empty-input and resource errors all
// lead to a Result whose Success field is false.
func (r *Resolver) Evaluate(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return failure(EmptyInputError{})
	}
	f, err := wff.Parse(input)
	if err != nil {
		r.log.Info("rejected formula", "input", input, "error", err)
		return failure(err)
	}
	if n := len(wff.Vars(f)); r.opts.MaxVariables > 0 && n > r.opts.MaxVariables {
		return failure(fmt.Errorf("%w: formula has %d variables, the limit is %d", tableau.ErrResourceExhausted, n, r.opts.MaxVariables))
	}
	proof, err := r.prover.Prove(f)
	if err != nil {
		r.log.Warn("tableau search abandoned", "formula", f, "steps", proof.Stats.NbSteps, "error", err)
		return failure(err)
	}
	valid := proof.Status == tableau.Valid
	if r.opts.Verify {
		r.verify(f, proof)
	}
	table := truthtable.Generate(f)
	r.log.Info("evaluated formula", "formula", f, "tautology", valid, "steps", proof.Stats.NbSteps, "branches", proof.Stats.NbBranches)
	return Result{
		Success:      true,
		AST:          f.String(),
		IsTautology:  valid,
		TruthTable:   &table,
		CounterModel: proof.CounterModel,
		Steps:        proof.Stats.NbSteps,
	}
}

// verify checks the tableau verdict on f against the SAT solver, and the counter-model, if any,
// against f itself. Both procedures are complete and sound: a disagreement is a bug.
func (r *Resolver) verify(f wff.Formula, proof *tableau.Proof) {
	valid := proof.Status == tableau.Valid
	satValid, satModel := satcheck.Valid(f)
	if satValid != valid {
		r.log.Error("tableau and SAT solver disagree", "formula", f, "tableau", valid, "sat", satValid)
		panic(fmt.Errorf("tableau says %t but SAT solver says %t for %v", valid, satValid, f))
	}
	if !valid {
		if wff.Eval(f, proof.CounterModel) {
			r.log.Error("counter-model satisfies formula", "formula", f, "model", proof.CounterModel)
			panic(fmt.Errorf("tableau counter-model %v satisfies %v", proof.CounterModel, f))
		}
		if wff.Eval(f, satModel) {
			panic(fmt.Errorf("SAT counter-model %v satisfies %v", satModel, f))
		}
	}
	r.log.Debug("verdict verified", "formula", f, "tautology", valid)
}
