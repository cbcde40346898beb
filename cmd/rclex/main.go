package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "vars":
		return varsCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [file]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens    print the token stream of an expression")
	fmt.Fprintln(os.Stderr, "  vars      print where each variable occurs")
	fmt.Fprintln(os.Stderr, "  fmt       rewrite .expr files with canonical token spacing (-w, -check)")
	fmt.Fprintln(os.Stderr, "  repl      tokenize expressions interactively")
	fmt.Fprintln(os.Stderr, "Flags (tokens, vars):")
	fmt.Fprintln(os.Stderr, "  -e string")
	fmt.Fprintln(os.Stderr, "    expression to scan instead of reading a file")
	fmt.Fprintln(os.Stderr, "  -json")
	fmt.Fprintln(os.Stderr, "    emit JSON instead of tab-separated lines")
	fmt.Fprintln(os.Stderr, "  -color")
	fmt.Fprintln(os.Stderr, "    colour token kinds (tokens only)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

type sourceFlags struct {
	expr    *string
	asJSON  *bool
	command string
}

func newSourceFlagSet(command string) (*flag.FlagSet, *sourceFlags) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	sf := &sourceFlags{
		expr:    fs.String("e", "", "expression to scan instead of reading a file"),
		asJSON:  fs.Bool("json", false, "emit JSON output"),
		command: command,
	}
	return fs, sf
}

// readSource resolves the expression from -e or the single positional file.
func (sf *sourceFlags) readSource(fs *flag.FlagSet) (string, error) {
	remaining := fs.Args()
	if *sf.expr != "" {
		if len(remaining) > 0 {
			return "", fmt.Errorf("rclex %s: -e and a file are mutually exclusive", sf.command)
		}
		return *sf.expr, nil
	}
	if len(remaining) == 0 {
		return "", fmt.Errorf("rclex %s: expression or file required", sf.command)
	}
	path, err := filepath.Abs(remaining[0])
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(input), nil
}
