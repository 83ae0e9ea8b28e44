package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax         = errors.New("invalid syntax")
	ErrTrailingInput  = errors.New("unexpected tokens remaining")
	ErrInternal       = errors.New("internal consistency error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNestingLimit   = errors.New("nesting limit exceeded")
	ErrInputTooLong   = errors.New("expression too long")
)

// ParseError reports why an expression could not be turned into a tree.
// Kind is one of ErrSyntax, ErrTrailingInput, ErrNestingLimit or
// ErrInputTooLong, and is what errors.Is matches against.
type ParseError struct {
	Kind   error
	Pos    int
	Msg    string
	Source string
}

func (e *ParseError) Error() string {
	return renderError("parse error", e.Source, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// EvalError reports a failure while walking a parsed tree.
type EvalError struct {
	Kind   error
	Pos    int
	Msg    string
	Source string
}

func (e *EvalError) Error() string {
	return renderError("evaluation error", e.Source, e.Pos, e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Kind }

func renderError(label, source string, offset int, msg string) string {
	var b strings.Builder
	line, column := offsetPosition(source, offset)
	fmt.Fprintf(&b, "%s at %d:%d: %s", label, line, column, msg)
	if frame := formatCodeFrame(source, offset); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func tokenLabel(tok Token) string {
	switch tok.Type {
	case tokenIllegal:
		return fmt.Sprintf("invalid character %q", tok.Literal)
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return "number " + tok.Literal
	default:
		return fmt.Sprintf("%q", string(tok.Type))
	}
}

func typeLabel(tt TokenType) string {
	switch tt {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return "number"
	default:
		return fmt.Sprintf("%q", string(tt))
	}
}
