package wff

import "fmt"

const missingOpHint = "an operator (^, v, ->, <->) is probably missing"

// MaxDepth is the maximum number of nested negations and parentheses in a formula.
const MaxDepth = 10000

type parser struct {
	lex   *Lexer
	tok   Token // Lookahead token
	depth int   // Number of negations and parentheses currently open
}

// Parse parses the formula in the given input.
// It returns the corresponding Formula, or an error that is either a *LexicalError or a *SyntaxError.
//
// The grammar is, from lowest to highest priority:
//
//	Formula -> Iff
//	Iff     -> Implies ('<->' Implies)*
//	Implies -> Or ('->' Or)*
//	Or      -> And ('v' And)*
//	And     -> Not ('^' Not)*
//	Not     -> '~' Not | Primary
//	Primary -> ATOM | '(' Iff ')'
func Parse(input string) (Formula, error) {
	p := parser{lex: NewLexer(input)}
	if err := p.scan(); err != nil {
		return nil, err
	}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokEOF {
		return nil, p.trailing()
	}
	return f, nil
}

func (p *parser) scan() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// trailing describes input remaining after a complete formula was read.
func (p *parser) trailing() error {
	err := &SyntaxError{Pos: p.tok.Pos, Found: p.tok, Expected: "end of formula"}
	switch p.tok.Kind {
	case TokAtom, TokNot, TokLParen:
		err.Msg = fmt.Sprintf("unconsumed input starting with %v", p.tok)
		err.Hint = fmt.Sprintf("%s before %q", missingOpHint, p.tok.Value)
	default:
		err.Msg = fmt.Sprintf("unconsumed input: remaining token %v", p.tok)
		err.Hint = "check parentheses and operators"
	}
	return err
}

// fold parses a left-associative chain of sub formulas, read by next and separated by kind tokens.
func (p *parser) fold(kind Kind, op Op, next func() (Formula, error)) (Formula, error) {
	f, err := next()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == kind {
		opTok := p.tok
		if err := p.scan(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokEOF || p.tok.Kind == TokRParen {
			return nil, &SyntaxError{
				Pos:      p.tok.Pos,
				Found:    p.tok,
				Expected: "operand",
				Msg:      fmt.Sprintf("operator %q at position %d has no right operand", opTok.Value, opTok.Pos),
				Hint:     "add a subformula after the operator or remove it",
			}
		}
		f2, err := next()
		if err != nil {
			return nil, err
		}
		f = Binary{Left: f, Op: op, Right: f2}
	}
	return f, nil
}

func (p *parser) parseIff() (Formula, error) {
	return p.fold(TokIff, OpIff, p.parseImplies)
}

func (p *parser) parseImplies() (Formula, error) {
	return p.fold(TokImplies, OpImplies, p.parseOr)
}

func (p *parser) parseOr() (Formula, error) {
	return p.fold(TokOr, OpOr, p.parseAnd)
}

func (p *parser) parseAnd() (Formula, error) {
	return p.fold(TokAnd, OpAnd, p.parseNot)
}

func (p *parser) parseNot() (Formula, error) {
	if p.tok.Kind != TokNot {
		return p.parsePrimary()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.scan(); err != nil {
		return nil, err
	}
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Negation{Operand: f}, nil
}

func (p *parser) parsePrimary() (Formula, error) {
	switch tok := p.tok; tok.Kind {
	case TokAtom:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return Atom{Name: tok.Value}, nil
	case TokLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		if err := p.scan(); err != nil {
			return nil, err
		}
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != TokRParen {
			return nil, p.unclosed(tok)
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return f, nil
	case TokEOF:
		return nil, &SyntaxError{
			Pos:      tok.Pos,
			Found:    tok,
			Expected: "atom, '~' or '('",
			Msg:      "unexpected end of formula, expected an atom, '~' or '('",
		}
	default:
		return nil, &SyntaxError{
			Pos:      tok.Pos,
			Found:    tok,
			Expected: "atom, '~' or '('",
			Msg:      fmt.Sprintf("unexpected token %v at start of expression", tok),
		}
	}
}

// enter opens a nesting level for the current token, a '~' or a '('.
func (p *parser) enter() error {
	if p.depth == MaxDepth {
		return &SyntaxError{
			Pos:      p.tok.Pos,
			Found:    p.tok,
			Expected: "a shallower formula",
			Msg:      fmt.Sprintf("formula is nested too deeply, more than %d levels", MaxDepth),
			Hint:     "split it into smaller formulas",
		}
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// unclosed describes a parenthesis, opened by lparen, that was not closed where expected.
func (p *parser) unclosed(lparen Token) error {
	err := &SyntaxError{Pos: p.tok.Pos, Found: p.tok, Expected: "')'"}
	switch p.tok.Kind {
	case TokAtom, TokNot, TokLParen:
		err.Msg = fmt.Sprintf("expected ')' or an operator, found %v", p.tok)
		example := p.tok.Value
		if p.tok.Kind != TokAtom {
			example += "P"
		}
		err.Hint = fmt.Sprintf("%s before %q, e.g (P ^ Q) ^ %s or (P ^ Q) v %s", missingOpHint, p.tok.Value, example, example)
	case TokEOF:
		err.Msg = fmt.Sprintf("parenthesis opened at position %d is never closed", lparen.Pos)
		err.Hint = "add the missing ')'"
	default:
		err.Msg = fmt.Sprintf("expected ')' to close parenthesis opened at position %d, found %v", lparen.Pos, p.tok)
	}
	return err
}
