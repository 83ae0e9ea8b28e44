package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgomes/vibecalc/calc"
)

type lintWarning struct {
	Line    int
	Column  int
	Message string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	showTree := fs.Bool("tree", false, "print the syntax tree of every expression")
	engineFn := newEngineFromFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("vibecalc analyze: file path required")
	}

	path, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve file path: %w", err)
	}
	lines, err := readExpressionFile(path)
	if err != nil {
		return err
	}
	engine, err := engineFn()
	if err != nil {
		return err
	}

	if *showTree {
		for _, line := range lines {
			tree, err := engine.Parse(line.text)
			if err != nil {
				continue
			}
			fmt.Printf("%s:%d:\n%s\n", path, line.number, indentLines(calc.Dump(tree), "  "))
		}
	}

	warnings := analyzeExpressions(engine, lines)
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		fmt.Printf("%s:%d:%d: %s\n", path, warning.Line, warning.Column, warning.Message)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

func analyzeExpressions(engine *calc.Engine, lines []sourceLine) []lintWarning {
	warnings := make([]lintWarning, 0)
	for _, line := range lines {
		_, err := engine.Evaluate(line.text)
		if err == nil {
			continue
		}
		warnings = append(warnings, warningFor(line, err))
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Line != warnings[j].Line {
			return warnings[i].Line < warnings[j].Line
		}
		return warnings[i].Column < warnings[j].Column
	})

	return warnings
}

func warningFor(line sourceLine, err error) lintWarning {
	warning := lintWarning{Line: line.number, Column: 1, Message: err.Error()}

	var parseErr *calc.ParseError
	var evalErr *calc.EvalError
	switch {
	case errors.As(err, &parseErr):
		warning.Column = parseErr.Pos + 1
		warning.Message = parseErr.Msg
	case errors.As(err, &evalErr):
		warning.Column = evalErr.Pos + 1
		warning.Message = evalErr.Msg
	}
	return warning
}

func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
