// Package calc evaluates integer arithmetic expressions built from decimal
// literals, the operators + - * /, and parentheses.
//
// Each expression goes through a lexer, a recursive-descent parser that
// builds a tree, and a tree-walking evaluator:
//
//	expr   := term ( ("+" | "-") term )*
//	term   := factor ( ("*" | "/") factor )*
//	factor := NUMBER | "(" expr ")"
//
// Operators of one tier associate to the left. Division is exact, so
// "10 / 4" evaluates to 2.5. Division by zero is an error.
//
// EvaluateAll is the batch entry point: it returns one result string per
// input, with ErrorMarker standing in for any expression that failed.
package calc
