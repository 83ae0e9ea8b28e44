package calc

// Node is an arithmetic expression tree. It is implemented only by
// *NumberLiteral and *BinaryExpr; callers switch on the concrete type.
type Node interface {
	Pos() int
	exprNode()
}

// NumberLiteral is a run of decimal digits exactly as it appeared in the source.
type NumberLiteral struct {
	Token Token
}

func (n *NumberLiteral) exprNode() {}
func (n *NumberLiteral) Pos() int  { return n.Token.Pos }

// Digits returns the literal digit string.
func (n *NumberLiteral) Digits() string { return n.Token.Literal }

// BinaryExpr applies one of + - * / to two subtrees.
type BinaryExpr struct {
	Left     Node
	Operator Token
	Right    Node
}

func (b *BinaryExpr) exprNode() {}
func (b *BinaryExpr) Pos() int  { return b.Operator.Pos }
