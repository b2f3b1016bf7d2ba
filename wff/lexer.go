package wff

import "unicode"

// A Lexer splits a formula into tokens.
type Lexer struct {
	input []rune
	pos   int // Index of the next rune to read
}

// NewLexer returns a lexer reading the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// cur returns the rune under the cursor, or -1 if the input was exhausted.
func (l *Lexer) cur() rune {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return -1
}

func (l *Lexer) peek() rune {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return -1
}

// token builds a token of the given kind starting at the current position,
// and consumes width runes.
func (l *Lexer) token(kind Kind, value string, width int) Token {
	t := Token{Kind: kind, Value: value, Pos: l.pos}
	l.pos += width
	return t
}

// Next returns the next token in the input.
// Once the input is exhausted, it keeps returning an EOF token.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	c := l.cur()
	if c == -1 {
		return Token{Kind: TokEOF, Pos: len(l.input)}, nil
	}
	// Uppercase letters are checked first: "V" is an atom, never a disjunction.
	if c >= 'A' && c <= 'Z' {
		return l.token(TokAtom, string(c), 1), nil
	}
	switch c {
	case '~', '¬':
		return l.token(TokNot, "~", 1), nil
	case '^', '∧':
		return l.token(TokAnd, "^", 1), nil
	case 'v', '∨':
		return l.token(TokOr, "v", 1), nil
	case '(':
		return l.token(TokLParen, "(", 1), nil
	case ')':
		return l.token(TokRParen, ")", 1), nil
	case '→':
		return l.token(TokImplies, "->", 1), nil
	case '↔':
		return l.token(TokIff, "<->", 1), nil
	case '-':
		if l.peek() == '>' {
			return l.token(TokImplies, "->", 2), nil
		}
	case '<':
		if l.peek() == '-' {
			if l.pos+2 < len(l.input) && l.input[l.pos+2] == '>' {
				return l.token(TokIff, "<->", 3), nil
			}
			// "<-" that is not followed by ">": the dash is to blame.
			return Token{}, &LexicalError{Char: '-', Pos: l.pos + 1}
		}
	}
	return Token{}, &LexicalError{Char: c, Pos: l.pos}
}

// Tokenize returns all the tokens of input, up to and including the EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var toks []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == TokEOF {
			return toks, nil
		}
	}
}
