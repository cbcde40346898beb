package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	KindOp Kind = iota
	KindLiteral
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindOp:
		return "OP"
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a classified slice of the source. Text is the exact matched
// substring and Pos the byte offset of its first character.
type Token struct {
	Text string
	Kind Kind
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Pos)
}
