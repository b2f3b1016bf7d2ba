package wff

// A Formula is a propositional formula.
// The only implementations are Atom, Negation and Binary; consumers are
// expected to switch on these three types and panic on anything else.
type Formula interface {
	String() string
	formula()
}

// Op is a binary connective.
type Op byte

const (
	// OpAnd is the conjunction.
	OpAnd = Op(iota)
	// OpOr is the disjunction.
	OpOr
	// OpImplies is the material implication.
	OpImplies
	// OpIff is the equivalence.
	OpIff
)

// Symbol returns the canonical ASCII symbol of the operator.
func (op Op) Symbol() string {
	switch op {
	case OpAnd:
		return "^"
	case OpOr:
		return "v"
	case OpImplies:
		return "->"
	case OpIff:
		return "<->"
	default:
		panic("invalid operator")
	}
}

func (op Op) String() string {
	return op.Symbol()
}

// Atom is a propositional variable.
type Atom struct {
	Name string
}

func (a Atom) formula() {}

func (a Atom) String() string { return a.Name }

// Negation is the negation of a subformula.
type Negation struct {
	Operand Formula
}

func (n Negation) formula() {}

func (n Negation) String() string {
	return "(~ " + n.Operand.String() + ")"
}

// Binary is a subformula built with a binary connective.
type Binary struct {
	Left  Formula
	Op    Op
	Right Formula
}

func (b Binary) formula() {}

func (b Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.Symbol() + " " + b.Right.String() + ")"
}

// Var generates a named atom.
func Var(name string) Formula {
	return Atom{Name: name}
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return Negation{Operand: f}
}

// And generates the conjunction of two subformulas.
func And(f1, f2 Formula) Formula {
	return Binary{Left: f1, Op: OpAnd, Right: f2}
}

// Or generates the disjunction of two subformulas.
func Or(f1, f2 Formula) Formula {
	return Binary{Left: f1, Op: OpOr, Right: f2}
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return Binary{Left: f1, Op: OpImplies, Right: f2}
}

// Iff indicates a subformula is equivalent to another one.
func Iff(f1, f2 Formula) Formula {
	return Binary{Left: f1, Op: OpIff, Right: f2}
}

// IsLiteral returns true iff f is an atom or the negation of an atom.
func IsLiteral(f Formula) bool {
	switch f := f.(type) {
	case Atom:
		return true
	case Negation:
		_, ok := f.Operand.(Atom)
		return ok
	case Binary:
		return false
	default:
		panic("invalid formula type")
	}
}

// Size returns the number of nodes in f.
func Size(f Formula) int {
	switch f := f.(type) {
	case Atom:
		return 1
	case Negation:
		return 1 + Size(f.Operand)
	case Binary:
		return 1 + Size(f.Left) + Size(f.Right)
	default:
		panic("invalid formula type")
	}
}
