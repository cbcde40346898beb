package lexer

import "unicode/utf8"

// Lexer scans a fixed source string on demand. It is not safe for
// concurrent use.
type Lexer struct {
	source string
	offset int

	// buf holds tokens scanned by Peek but not yet returned by Next.
	buf []Token

	vars varTable
}

// New returns a lexer over source. Validation is deferred to scanning.
func New(source string) *Lexer {
	return &Lexer{source: source, vars: newVarTable()}
}

// Source returns the text the lexer was built from.
func (l *Lexer) Source() string {
	return l.source
}

// HasNext skips whitespace and reports whether another token is available.
func (l *Lexer) HasNext() bool {
	drained := l.sourceDrained()
	return len(l.buf) > 0 || !drained
}

// sourceDrained skips whitespace and reports whether the cursor reached the
// end of the source, ignoring buffered tokens.
func (l *Lexer) sourceDrained() bool {
	l.skipWhitespace()
	return l.offset >= len(l.source)
}

// Next consumes and returns the next token. It returns ErrExhausted when
// the source holds no further token, and an *UnrecognizedCharError when the
// next character starts no token.
func (l *Lexer) Next() (Token, error) {
	if len(l.buf) > 0 {
		tok := l.buf[0]
		l.buf = l.buf[1:]
		return tok, nil
	}
	if !l.HasNext() {
		return Token{}, ErrExhausted
	}
	return l.scan()
}

// Peek returns the token n positions past the one Next would return,
// without consuming anything. The boolean is false when fewer than n+1
// tokens remain. A scan failure while filling the lookahead is returned as
// the error; tokens already buffered are kept.
func (l *Lexer) Peek(n int) (Token, bool, error) {
	if n < 0 {
		return Token{}, false, nil
	}
	for len(l.buf) <= n {
		if l.sourceDrained() {
			return Token{}, false, nil
		}
		next, err := l.scan()
		if err != nil {
			return Token{}, false, err
		}
		l.buf = append(l.buf, next)
	}
	return l.buf[n], true, nil
}

// Tokenize scans all of source. On failure it returns the tokens scanned
// before the offending character along with the error.
func Tokenize(source string) ([]Token, map[string][]int, error) {
	l := New(source)
	var tokens []Token
	for l.HasNext() {
		tok, err := l.Next()
		if err != nil {
			return tokens, l.Vars(), err
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.Vars(), nil
}

// scan reads one token starting at the cursor. Callers must have checked
// that a non-whitespace character remains.
func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()
	if l.offset >= len(l.source) {
		panic("lexer: scan past end of source")
	}

	c := l.source[l.offset]
	switch {
	case isDigit(c):
		return l.scanNumber(), nil
	case isLetter(c):
		return l.scanIdentifier(), nil
	case isOperatorChar(c):
		return l.scanOperator(), nil
	default:
		ch, _ := utf8.DecodeRuneInString(l.source[l.offset:])
		return Token{}, newUnrecognizedCharError(l.source, ch, l.offset)
	}
}

func (l *Lexer) scanNumber() Token {
	start := l.offset
	l.skipDigits()
	if l.offset < len(l.source) && l.source[l.offset] == '.' {
		l.offset++
		l.skipDigits()
	}
	return Token{Text: l.source[start:l.offset], Kind: KindLiteral, Pos: start}
}

func (l *Lexer) scanIdentifier() Token {
	start := l.offset
	for l.offset < len(l.source) && isLetter(l.source[l.offset]) {
		l.offset++
	}
	name := l.source[start:l.offset]
	l.vars.record(name, start)
	return Token{Text: name, Kind: KindVariable, Pos: start}
}

func (l *Lexer) scanOperator() Token {
	start := l.offset
	width := 1
	if acceptsAssign(l.source[start]) && start+1 < len(l.source) && l.source[start+1] == '=' {
		width = 2
	}
	l.offset += width
	return Token{Text: l.source[start:l.offset], Kind: KindOp, Pos: start}
}

func (l *Lexer) skipDigits() {
	for l.offset < len(l.source) && isDigit(l.source[l.offset]) {
		l.offset++
	}
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.source) && isSpace(l.source[l.offset]) {
		l.offset++
	}
}
