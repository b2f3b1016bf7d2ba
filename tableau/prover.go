package tableau

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/propcalc/tautology/wff"
)

// Options bound and trace a tableau search.
// The zero value means no limit and no trace.
type Options struct {
	// MaxSteps is the maximum number of formulas expanded before giving up. 0 means no limit.
	MaxSteps int
	// Timeout is the maximum duration of a search. 0 means no limit.
	Timeout time.Duration
	// Logger, if not nil, receives a debug record for each expansion.
	Logger *slog.Logger
}

// A Prover decides whether formulas are tautologies.
// A Prover holds no state between two searches and can be reused.
type Prover struct {
	opts Options
	log  *slog.Logger
}

// New returns a prover using the given options.
func New(opts Options) *Prover {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Prover{opts: opts, log: log}
}

// A Proof is the outcome of a tableau search.
type Proof struct {
	Status Status
	// CounterModel is an assignment of all the formula's variables under which it is false.
	// It is nil when the formula is valid.
	CounterModel map[string]bool
	Stats        Stats
}

// IsTautology returns true iff f is true under every assignment of its variables.
// The search is not bounded.
func IsTautology(f wff.Formula) bool {
	proof, err := New(Options{}).Prove(f)
	if err != nil {
		// Cannot happen without limits.
		panic(err)
	}
	return proof.Status == Valid
}

// Prove decides whether f is a tautology.
// If the step or time budget is exhausted before a verdict is reached, it returns the partial
// proof, with an Indet status, and an error wrapping ErrResourceExhausted.
func (p *Prover) Prove(f wff.Formula) (*Proof, error) {
	var deadline time.Time
	if p.opts.Timeout > 0 {
		deadline = time.Now().Add(p.opts.Timeout)
	}
	proof := &Proof{Status: Indet}
	stats := &proof.Stats
	q := newQueue(branch{wff.Not(f)})
	stats.NbBranches = 1
	stats.MaxWorklist = 1
	for q.len() > 0 {
		b := q.pop()
		if b.closed() {
			stats.NbClosed++
			continue
		}
		i := b.compound()
		if i == -1 {
			proof.Status = Invalid
			proof.CounterModel = b.model(wff.Vars(f))
			p.log.Debug("open branch found", "branch", b, "steps", stats.NbSteps)
			return proof, nil
		}
		if p.opts.MaxSteps > 0 && stats.NbSteps >= p.opts.MaxSteps {
			return proof, fmt.Errorf("%w: no verdict after %d steps", ErrResourceExhausted, stats.NbSteps)
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return proof, fmt.Errorf("%w: no verdict after %v", ErrResourceExhausted, p.opts.Timeout)
		}
		succ, rule := expand(b[i], b.without(i))
		stats.NbSteps++
		stats.NbBranches += len(succ)
		q.push(succ...)
		if n := q.len(); n > stats.MaxWorklist {
			stats.MaxWorklist = n
		}
		p.log.Debug("expanded", "formula", b[i], "rule", rule, "worklist", q.len())
	}
	proof.Status = Valid
	p.log.Debug("all branches closed", "steps", stats.NbSteps, "branches", stats.NbBranches)
	return proof, nil
}
