package calc

import (
	"errors"
	"strings"
	"testing"
)

func parseOrFail(t *testing.T, source string) Node {
	t.Helper()
	node, err := newParser(source, 0).ParseExpression()
	if err != nil {
		t.Fatalf("parse %q failed: %v", source, err)
	}
	return node
}

func TestParserBuildsLeftAssociativeTrees(t *testing.T) {
	node := parseOrFail(t, "10 - 2 - 3")

	root, ok := node.(*BinaryExpr)
	if !ok || root.Operator.Type != tokenMinus {
		t.Fatalf("expected minus at root, got %#v", node)
	}
	if lit, ok := root.Right.(*NumberLiteral); !ok || lit.Digits() != "3" {
		t.Fatalf("expected 3 on the right, got %#v", root.Right)
	}
	left, ok := root.Left.(*BinaryExpr)
	if !ok || left.Operator.Type != tokenMinus {
		t.Fatalf("expected (10 - 2) on the left, got %#v", root.Left)
	}
}

func TestParserProductBindsTighterThanSum(t *testing.T) {
	node := parseOrFail(t, "2 + 3 * 4")

	root, ok := node.(*BinaryExpr)
	if !ok || root.Operator.Type != tokenPlus {
		t.Fatalf("expected plus at root, got %#v", node)
	}
	right, ok := root.Right.(*BinaryExpr)
	if !ok || right.Operator.Type != tokenAsterisk {
		t.Fatalf("expected product on the right, got %#v", root.Right)
	}
}

func TestParserDropsGroupingFromTree(t *testing.T) {
	node := parseOrFail(t, "((7))")
	lit, ok := node.(*NumberLiteral)
	if !ok || lit.Digits() != "7" {
		t.Fatalf("expected bare number literal, got %#v", node)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		kind   error
		pos    int
		msg    string
	}{
		{name: "empty", source: "", kind: ErrSyntax, pos: 0, msg: "got end of input"},
		{name: "lone_operator", source: "+", kind: ErrSyntax, pos: 0, msg: `got "+"`},
		{name: "unbalanced_open", source: "(1 + 2", kind: ErrSyntax, pos: 6, msg: `expected ")"`},
		{name: "illegal_character", source: "3 & 4", kind: ErrTrailingInput, pos: 2, msg: `invalid character "&"`},
		{name: "illegal_in_operand", source: "3 + &", kind: ErrSyntax, pos: 4, msg: `invalid character "&"`},
		{name: "trailing_paren", source: "10 / 2 - 1 ) ", kind: ErrTrailingInput, pos: 11, msg: `unexpected ")"`},
		{name: "dangling_operator", source: "1 *", kind: ErrSyntax, pos: 3, msg: "expected number"},
		{name: "adjacent_numbers", source: "1 2", kind: ErrTrailingInput, pos: 2, msg: "number 2"},
		{name: "empty_group", source: "()", kind: ErrSyntax, pos: 1, msg: `got ")"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newParser(tc.source, 0).ParseExpression()
			if err == nil {
				t.Fatalf("expected error for %q", tc.source)
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Pos != tc.pos {
				t.Fatalf("expected position %d, got %d", tc.pos, parseErr.Pos)
			}
			if !strings.Contains(parseErr.Msg, tc.msg) {
				t.Fatalf("expected message containing %q, got %q", tc.msg, parseErr.Msg)
			}
		})
	}
}

func TestParserNestingLimit(t *testing.T) {
	source := strings.Repeat("(", 5) + "1" + strings.Repeat(")", 5)

	if _, err := newParser(source, 5).ParseExpression(); err != nil {
		t.Fatalf("depth 5 should parse under limit 5: %v", err)
	}

	_, err := newParser(source, 4).ParseExpression()
	if !errors.Is(err, ErrNestingLimit) {
		t.Fatalf("expected nesting limit error, got %v", err)
	}
}

func TestParseErrorIncludesCodeFrame(t *testing.T) {
	_, err := newParser("1 + * 2", 0).ParseExpression()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "parse error at 1:5") {
		t.Fatalf("missing position in %q", msg)
	}
	if !strings.Contains(msg, " 1 | 1 + * 2\n   |     ^") {
		t.Fatalf("missing code frame in %q", msg)
	}
}
