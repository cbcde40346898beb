package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/forsilence/rangecalc/lexer"
)

type tokenJSON struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	Pos  int    `json:"pos"`
}

type varJSON struct {
	Name      string `json:"name"`
	Positions []int  `json:"positions"`
}

func tokensCommand(args []string) error {
	fs, sf := newSourceFlagSet("tokens")
	color := fs.Bool("color", false, "colour token kinds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	source, err := sf.readSource(fs)
	if err != nil {
		return err
	}

	tokens, _, scanErr := lexer.Tokenize(source)
	if *sf.asJSON {
		if err := writeJSON(tokensToJSON(tokens)); err != nil {
			return err
		}
	} else {
		for _, tok := range tokens {
			kind := tok.Kind.String()
			if *color {
				kind = kindStyle(tok.Kind).Render(kind)
			}
			fmt.Printf("%d\t%s\t%s\n", tok.Pos, kind, tok.Text)
		}
	}
	if scanErr != nil {
		return fmt.Errorf("tokenize failed: %w", scanErr)
	}
	return nil
}

func varsCommand(args []string) error {
	fs, sf := newSourceFlagSet("vars")
	if err := fs.Parse(args); err != nil {
		return err
	}
	source, err := sf.readSource(fs)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	var scanErr error
	for l.HasNext() {
		if _, scanErr = l.Next(); scanErr != nil {
			break
		}
	}

	entries := make([]varJSON, 0)
	for _, name := range l.VarNames() {
		entries = append(entries, varJSON{Name: name, Positions: l.Occurrences(name)})
	}
	if *sf.asJSON {
		if err := writeJSON(entries); err != nil {
			return err
		}
	} else {
		for _, entry := range entries {
			fmt.Printf("%s\t%s\n", entry.Name, joinPositions(entry.Positions))
		}
	}
	if scanErr != nil {
		return fmt.Errorf("tokenize failed: %w", scanErr)
	}
	return nil
}

func tokensToJSON(tokens []lexer.Token) []tokenJSON {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{Text: tok.Text, Kind: tok.Kind.String(), Pos: tok.Pos}
	}
	return out
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func joinPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = strconv.Itoa(pos)
	}
	return strings.Join(parts, ",")
}

func kindStyle(kind lexer.Kind) lipgloss.Style {
	switch kind {
	case lexer.KindLiteral:
		return literalStyle
	case lexer.KindVariable:
		return variableStyle
	default:
		return opStyle
	}
}
