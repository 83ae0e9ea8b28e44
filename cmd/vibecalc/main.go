package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/vibecalc/calc"
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
	case "eval":
		return evalCommand(args[2:])
	case "run":
		return runCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func newEngineFromFlags(fs *flag.FlagSet) func() (*calc.Engine, error) {
	nesting := fs.Int("max-depth", 0, "maximum parenthesis nesting (0 uses the default, -1 disables)")
	length := fs.Int("max-length", 0, "maximum expression length in bytes (0 uses the default, -1 disables)")
	return func() (*calc.Engine, error) {
		return calc.NewEngine(calc.Config{NestingLimit: *nesting, MaxInputLength: *length})
	}
}

func evalCommand(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	engineFn := newEngineFromFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	expressions := fs.Args()
	if len(expressions) == 0 {
		return errors.New("vibecalc eval: expression required")
	}
	engine, err := engineFn()
	if err != nil {
		return err
	}
	for _, result := range engine.EvaluateAll(expressions) {
		fmt.Println(result)
	}
	return nil
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only parse the expressions without evaluating")
	engineFn := newEngineFromFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("vibecalc run: file path required")
	}
	engine, err := engineFn()
	if err != nil {
		return err
	}

	lines, err := readExpressionFile(remaining[0])
	if err != nil {
		return err
	}

	if *checkOnly {
		failed := 0
		for _, line := range lines {
			if _, err := engine.Parse(line.text); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s:%d: %v\n", remaining[0], line.number, err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("vibecalc run: %d expression(s) failed to parse", failed)
		}
		return nil
	}

	expressions := make([]string, len(lines))
	for i, line := range lines {
		expressions[i] = line.text
	}
	for _, result := range engine.EvaluateAll(expressions) {
		fmt.Println(result)
	}
	return nil
}

type sourceLine struct {
	number int
	text   string
}

// readExpressionFile returns the expressions in path, one per line. Blank
// lines and lines starting with # are skipped.
func readExpressionFile(path string) ([]sourceLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	defer f.Close()
	return scanExpressions(f)
}

func scanExpressions(r io.Reader) ([]sourceLine, error) {
	var lines []sourceLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, sourceLine{number: number, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	return lines, nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  eval <expr>...      evaluate expressions, one result per line")
	fmt.Fprintln(os.Stderr, "  run <file>          evaluate every expression in a file")
	fmt.Fprintln(os.Stderr, "  fmt <path>...       rewrite .calc files in canonical form")
	fmt.Fprintln(os.Stderr, "  analyze <file>      report expressions that would evaluate to ERROR")
	fmt.Fprintln(os.Stderr, "  repl                start an interactive session")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -max-depth int")
	fmt.Fprintln(os.Stderr, "    maximum parenthesis nesting, default 256, -1 for none (eval, run, analyze, repl)")
	fmt.Fprintln(os.Stderr, "  -max-length int")
	fmt.Fprintln(os.Stderr, "    maximum expression length in bytes, default 65536, -1 for none (eval, run, analyze, repl)")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    run: only parse; fmt: fail if any file needs formatting")
	fmt.Fprintln(os.Stderr, "  -w")
	fmt.Fprintln(os.Stderr, "    fmt: write result to source files instead of stdout")
	fmt.Fprintln(os.Stderr, "  -tree")
	fmt.Fprintln(os.Stderr, "    analyze: print the syntax tree of every expression")
	fmt.Fprintln(os.Stderr, "  -plain")
	fmt.Fprintln(os.Stderr, "    repl: line-mode prompt instead of the full-screen interface")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
