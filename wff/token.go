package wff

import "fmt"

// Kind is the kind of a lexical token.
type Kind byte

const (
	// TokAtom is a propositional variable, i.e a single uppercase letter.
	TokAtom = Kind(iota)
	// TokNot is the negation operator.
	TokNot
	// TokAnd is the conjunction operator.
	TokAnd
	// TokOr is the disjunction operator.
	TokOr
	// TokImplies is the implication operator.
	TokImplies
	// TokIff is the equivalence operator.
	TokIff
	// TokLParen is an opening parenthesis.
	TokLParen
	// TokRParen is a closing parenthesis.
	TokRParen
	// TokEOF means the input was exhausted.
	TokEOF
)

func (k Kind) String() string {
	switch k {
	case TokAtom:
		return "ATOM"
	case TokNot:
		return "NOT"
	case TokAnd:
		return "AND"
	case TokOr:
		return "OR"
	case TokImplies:
		return "IMPLIES"
	case TokIff:
		return "IFF"
	case TokLParen:
		return "LPAREN"
	case TokRParen:
		return "RPAREN"
	case TokEOF:
		return "EOF"
	default:
		panic("invalid token kind")
	}
}

// A Token is a lexical unit read from a formula.
// Value is the canonical spelling of the token (e.g "->" for both "->" and "→"),
// or the letter itself for atoms. It is empty for TokEOF.
// Pos is the 0-based position of the token's first character, counted in runes.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Kind == TokEOF {
		return "EOF"
	}
	return fmt.Sprintf("%v (%q)", t.Kind, t.Value)
}
