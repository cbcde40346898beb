package lexer

import (
	"errors"
	"strings"
	"testing"
)

func FuzzLexerTokensCoverSource(f *testing.F) {
	f.Add("")
	f.Add("x1 + y2")
	f.Add("(a+=2.5)*b~c^2")
	f.Add("12. / 3 # 4")
	f.Add("\r\n  -= é")

	f.Fuzz(func(t *testing.T, source string) {
		l := New(source)
		last := -1
		for l.HasNext() {
			peeked, ok, peekErr := l.Peek(0)
			tok, err := l.Next()
			if err != nil {
				var charErr *UnrecognizedCharError
				if !errors.As(err, &charErr) {
					t.Fatalf("unexpected error type %T: %v", err, err)
				}
				if peekErr == nil {
					t.Fatalf("peek succeeded where next failed")
				}
				if charErr.Pos <= last || charErr.Pos >= len(source) {
					t.Fatalf("error position %d out of range", charErr.Pos)
				}
				return
			}
			if !ok || peeked != tok {
				t.Fatalf("peek(0) %v does not match next %v", peeked, tok)
			}
			if tok.Pos <= last {
				t.Fatalf("token %v does not advance past %d", tok, last)
			}
			if tok.Text == "" || source[tok.Pos:tok.Pos+len(tok.Text)] != tok.Text {
				t.Fatalf("token %v does not match source", tok)
			}
			if strings.ContainsAny(tok.Text, " \r\n") {
				t.Fatalf("token %v contains whitespace", tok)
			}
			last = tok.Pos
		}
		if _, err := l.Next(); !errors.Is(err, ErrExhausted) {
			t.Fatalf("expected ErrExhausted after draining, got %v", err)
		}
	})
}
