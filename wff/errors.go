package wff

import "fmt"

// A LexicalError is returned when the input contains a character that cannot start any token.
type LexicalError struct {
	Char rune // The offending character
	Pos  int  // Its 0-based position, in runes
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: unexpected character %q at position %d", e.Char, e.Pos)
}

// A SyntaxError is returned when the token stream does not follow the grammar of formulas.
type SyntaxError struct {
	Pos      int    // Position of the offending token
	Found    Token  // The offending token
	Expected string // What was expected instead, if anything specific was
	Msg      string // Description of the problem
	Hint     string // Likely fix, when the problem matches a known pattern
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}
