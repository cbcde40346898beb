package lexer

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isOperatorChar includes '=' only so compound assignments and a lone '='
// can be recognised.
func isOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '^', '~', '(', ')', '=':
		return true
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n'
}

// acceptsAssign reports whether op may be immediately followed by '=' to form
// a compound assignment.
func acceptsAssign(op byte) bool {
	switch op {
	case '+', '-', '*', '/':
		return true
	}
	return false
}
