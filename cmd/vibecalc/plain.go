package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/vibecalc/calc"
	"github.com/peterh/liner"
)

const (
	historyFile = ".vibecalc_history"
	plainPrompt = "calc> "
)

// prompter is the part of *liner.State the line-mode session needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runPlainREPL(engine *calc.Engine) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return plainSession(ln, engine, os.Stdout, os.Stderr)
}

// plainSession reads expressions until EOF, Ctrl-C or :quit, printing each
// result to out and each failure to errOut.
func plainSession(ln prompter, engine *calc.Engine, out, errOut io.Writer) error {
	showTree := false
	for {
		line, err := ln.Prompt(plainPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ":") {
			switch strings.Fields(input)[0] {
			case ":quit", ":q":
				return nil
			case ":tree", ":t":
				showTree = !showTree
				fmt.Fprintf(out, "trees %s\n", onOff(showTree))
			case ":help", ":h":
				fmt.Fprintln(out, "enter an expression, :tree to toggle syntax trees, :quit to exit")
			default:
				fmt.Fprintf(errOut, "unknown command %s. Type :quit to exit.\n", input)
			}
			continue
		}

		ln.AppendHistory(input)

		tree, err := engine.Parse(input)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		if showTree {
			fmt.Fprintln(out, calc.Dump(tree))
		}
		result, err := engine.EvaluateTree(input, tree)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out, result.String())
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
