package lexer

// varTable maps each identifier to the offsets where it was scanned, in
// scan order. names keeps first-seen order.
type varTable struct {
	positions map[string][]int
	names     []string
}

func newVarTable() varTable {
	return varTable{positions: make(map[string][]int)}
}

func (v *varTable) record(name string, pos int) {
	existing, ok := v.positions[name]
	if !ok {
		v.names = append(v.names, name)
	}
	v.positions[name] = append(existing, pos)
}

// Vars returns the occurrence table of every variable scanned so far,
// including variables sitting in the lookahead buffer. The result is a copy.
func (l *Lexer) Vars() map[string][]int {
	out := make(map[string][]int, len(l.vars.positions))
	for name, positions := range l.vars.positions {
		out[name] = append([]int(nil), positions...)
	}
	return out
}

// Occurrences returns the offsets at which name has been scanned, or nil if
// it has not been seen.
func (l *Lexer) Occurrences(name string) []int {
	positions, ok := l.vars.positions[name]
	if !ok {
		return nil
	}
	return append([]int(nil), positions...)
}

// VarNames returns the scanned variable names in order of first occurrence.
func (l *Lexer) VarNames() []string {
	return append([]string(nil), l.vars.names...)
}
