package calc

import (
	"fmt"
	"strings"
)

const (
	precSum = iota + 1
	precProduct
)

var precedences = map[TokenType]int{
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
}

// Format prints a tree in canonical form: one space around each operator
// and only the parentheses needed to parse back to the same tree.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *NumberLiteral:
		b.WriteString(n.Digits())
	case *BinaryExpr:
		prec := precedences[n.Operator.Type]
		writeOperand(b, n.Left, nodePrecedence(n.Left) < prec)
		b.WriteString(" ")
		b.WriteString(string(n.Operator.Type))
		b.WriteString(" ")
		// Same-tier right operands keep their parens so a-(b-c) stays put.
		writeOperand(b, n.Right, nodePrecedence(n.Right) <= prec)
	}
}

func writeOperand(b *strings.Builder, node Node, group bool) {
	if group {
		b.WriteString("(")
	}
	writeNode(b, node)
	if group {
		b.WriteString(")")
	}
}

func nodePrecedence(node Node) int {
	if bin, ok := node.(*BinaryExpr); ok {
		return precedences[bin.Operator.Type]
	}
	return precProduct + 1
}

// Dump renders the tree one node per line, children indented under their
// parent.
func Dump(node Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return strings.TrimRight(b.String(), "\n")
}

func dumpNode(b *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *NumberLiteral:
		fmt.Fprintf(b, "%sNumber %s\n", indent, n.Digits())
	case *BinaryExpr:
		fmt.Fprintf(b, "%sBinaryOp %s\n", indent, n.Operator.Type)
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Right, depth+1)
	}
}
