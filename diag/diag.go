// Package diag builds positioned diagnostics for expression sources and
// renders them with a caret under the offending column.
package diag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Diagnostic is an error located at a byte offset of a source string.
type Diagnostic struct {
	Source  string
	Message string
	Pos     int
}

// New returns a diagnostic for message at byte offset pos of source.
func New(source, message string, pos int) *Diagnostic {
	return &Diagnostic{Source: source, Message: message, Pos: pos}
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	line, column := LineColumn(d.Source, d.Pos)
	fmt.Fprintf(&b, "error at %d:%d: %s", line, column, d.Message)
	if frame := d.CodeFrame(); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// CodeFrame renders the source line containing the diagnostic with a caret
// marking its column. It returns "" for an empty source.
func (d *Diagnostic) CodeFrame() string {
	if d.Source == "" {
		return ""
	}

	line, column := LineColumn(d.Source, d.Pos)
	lines := strings.Split(d.Source, "\n")
	lineText := strings.TrimSuffix(lines[line-1], "\r")

	lineLabel := strconv.Itoa(line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}

// LineColumn converts a byte offset into a 1-based line and a 1-based column
// counted in runes. Offsets outside the source are clamped to its bounds.
func LineColumn(source string, pos int) (int, int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(source) {
		pos = len(source)
	}

	prefix := source[:pos]
	line := strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column := utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, column
}
