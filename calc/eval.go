package calc

import (
	"errors"
	"fmt"
)

type evaluator struct {
	source string
}

// Eval computes the value of a parsed tree. The tree is not modified.
func Eval(node Node) (Number, error) {
	return (&evaluator{}).visit(node)
}

func (ev *evaluator) visit(node Node) (Number, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return ev.visitNumber(n)
	case *BinaryExpr:
		return ev.visitBinary(n)
	case nil:
		return Number{}, ev.newError(ErrInternal, 0, "missing expression")
	default:
		return Number{}, ev.newError(ErrInternal, node.Pos(), fmt.Sprintf("unsupported node %T", node))
	}
}

func (ev *evaluator) visitNumber(n *NumberLiteral) (Number, error) {
	if n.Token.Type != tokenNumber {
		return Number{}, ev.newError(ErrInternal, n.Pos(), fmt.Sprintf("number node holds %s token", n.Token.Type))
	}
	value, err := ParseNumber(n.Digits())
	if err != nil {
		return Number{}, ev.newError(ErrInternal, n.Pos(), err.Error())
	}
	return value, nil
}

func (ev *evaluator) visitBinary(n *BinaryExpr) (Number, error) {
	left, err := ev.visit(n.Left)
	if err != nil {
		return Number{}, err
	}
	right, err := ev.visit(n.Right)
	if err != nil {
		return Number{}, err
	}

	switch n.Operator.Type {
	case tokenPlus:
		return left.Add(right), nil
	case tokenMinus:
		return left.Sub(right), nil
	case tokenAsterisk:
		return left.Mul(right), nil
	case tokenSlash:
		quotient, err := left.Quo(right)
		if errors.Is(err, ErrDivisionByZero) {
			return Number{}, ev.newError(ErrDivisionByZero, n.Pos(), "division by zero")
		}
		return quotient, err
	default:
		return Number{}, ev.newError(ErrInternal, n.Pos(), fmt.Sprintf("unknown operator %s", n.Operator.Type))
	}
}

func (ev *evaluator) newError(kind error, pos int, msg string) error {
	return &EvalError{Kind: kind, Pos: pos, Msg: msg, Source: ev.source}
}
