package tableau

import "errors"

// Status is the verdict reached by the prover on a formula.
type Status byte

const (
	// Indet means the formula was not proven valid or invalid yet.
	Indet = Status(iota)
	// Valid means the formula is a tautology: every branch of the tableau of its negation is closed.
	Valid
	// Invalid means the formula is not a tautology: an open branch was fully expanded.
	Invalid
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	default:
		panic("invalid status")
	}
}

// ErrResourceExhausted is returned when a search exceeds its step or time budget.
var ErrResourceExhausted = errors.New("resource exhausted")

// Stats are statistics about a tableau search.
type Stats struct {
	NbSteps     int // Number of formulas expanded
	NbBranches  int // Number of branches created, including the initial one
	NbClosed    int // Number of branches found closed
	MaxWorklist int // Maximum number of branches waiting to be processed at once
}
