package lexer

import (
	"errors"
	"fmt"

	"github.com/forsilence/rangecalc/diag"
)

// ErrExhausted is returned by Next when no token remains.
var ErrExhausted = errors.New("lexer: no token remaining")

// UnrecognizedCharError reports a character that starts no token. Pos is the
// byte offset of Char in Source; the lexer does not advance past it.
type UnrecognizedCharError struct {
	Source string
	Char   rune
	Pos    int

	diag *diag.Diagnostic
}

func newUnrecognizedCharError(source string, ch rune, pos int) *UnrecognizedCharError {
	msg := fmt.Sprintf("unrecognized character %q", ch)
	return &UnrecognizedCharError{
		Source: source,
		Char:   ch,
		Pos:    pos,
		diag:   diag.New(source, msg, pos),
	}
}

func (e *UnrecognizedCharError) Error() string {
	return e.diag.Error()
}

func (e *UnrecognizedCharError) Unwrap() error {
	return e.diag
}
