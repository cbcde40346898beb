package diag

import (
	"strings"
	"testing"
)

func TestLineColumn(t *testing.T) {
	cases := []struct {
		name   string
		source string
		pos    int
		line   int
		column int
	}{
		{name: "start", source: "a + b", pos: 0, line: 1, column: 1},
		{name: "middle", source: "a + b", pos: 4, line: 1, column: 5},
		{name: "second_line", source: "a +\nb # c", pos: 6, line: 2, column: 3},
		{name: "after_newline", source: "a\n", pos: 2, line: 2, column: 1},
		{name: "multibyte_prefix", source: "é + #", pos: 5, line: 1, column: 5},
		{name: "negative_clamped", source: "abc", pos: -3, line: 1, column: 1},
		{name: "past_end_clamped", source: "abc", pos: 10, line: 1, column: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line, column := LineColumn(tc.source, tc.pos)
			if line != tc.line || column != tc.column {
				t.Fatalf("LineColumn(%q, %d) = %d:%d, want %d:%d", tc.source, tc.pos, line, column, tc.line, tc.column)
			}
		})
	}
}

func TestDiagnosticErrorIncludesCodeFrame(t *testing.T) {
	d := New("3 # 4", "unrecognized character '#'", 2)

	want := "error at 1:3: unrecognized character '#'\n" +
		"  --> line 1, column 3\n" +
		" 1 | 3 # 4\n" +
		"   |   ^"
	if got := d.Error(); got != want {
		t.Fatalf("unexpected error text:\n%s\nwant:\n%s", got, want)
	}
}

func TestCodeFrameSelectsFailingLine(t *testing.T) {
	d := New("x + 1\r\ny $ 2", "bad", 9)

	frame := d.CodeFrame()
	if !strings.Contains(frame, " 2 | y $ 2\n") {
		t.Fatalf("expected second line in frame, got %q", frame)
	}
	if !strings.HasSuffix(frame, "   |   ^") {
		t.Fatalf("caret misplaced in frame %q", frame)
	}
}

func TestCodeFrameEmptySource(t *testing.T) {
	d := New("", "nothing here", 0)
	if frame := d.CodeFrame(); frame != "" {
		t.Fatalf("expected empty frame, got %q", frame)
	}
	if got := d.Error(); got != "error at 1:1: nothing here" {
		t.Fatalf("unexpected error text %q", got)
	}
}
