package calc

import "fmt"

type parser struct {
	l *lexer

	curToken Token

	depth        int
	nestingLimit int
}

// newParser primes the lookahead with the first token. A nestingLimit of
// zero disables the parenthesis depth check.
func newParser(input string, nestingLimit int) *parser {
	p := &parser{l: newLexer(input), nestingLimit: nestingLimit}
	p.nextToken()
	return p
}

func (p *parser) nextToken() {
	p.curToken = p.l.NextToken()
}

// ParseExpression parses one complete expression and requires that nothing
// but end of input follows it.
func (p *parser) ParseExpression() (Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != tokenEOF {
		return nil, p.newError(ErrTrailingInput, p.curToken, fmt.Sprintf("unexpected %s after expression", tokenLabel(p.curToken)))
	}
	return node, nil
}

// eat consumes the lookahead when it has the expected type. It is the only
// place tokens are consumed.
func (p *parser) eat(tt TokenType) error {
	if p.curToken.Type != tt {
		return p.errorExpected(p.curToken, typeLabel(tt))
	}
	p.nextToken()
	return nil
}

// expr := term ( (PLUS | MINUS) term )*
func (p *parser) parseExpr() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curToken.Type == tokenPlus || p.curToken.Type == tokenMinus {
		op := p.curToken
		if err := p.eat(op.Type); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Left: node, Operator: op, Right: right}
	}

	return node, nil
}

// term := factor ( (ASTERISK | SLASH) factor )*
func (p *parser) parseTerm() (Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curToken.Type == tokenAsterisk || p.curToken.Type == tokenSlash {
		op := p.curToken
		if err := p.eat(op.Type); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Left: node, Operator: op, Right: right}
	}

	return node, nil
}

// factor := NUMBER | LPAREN expr RPAREN
func (p *parser) parseFactor() (Node, error) {
	tok := p.curToken
	switch tok.Type {
	case tokenNumber:
		if err := p.eat(tokenNumber); err != nil {
			return nil, err
		}
		return &NumberLiteral{Token: tok}, nil
	case tokenLParen:
		return p.parseGroupedExpression()
	default:
		return nil, p.errorExpected(tok, "number or \"(\"")
	}
}

func (p *parser) parseGroupedExpression() (Node, error) {
	open := p.curToken
	p.depth++
	defer func() { p.depth-- }()
	if p.nestingLimit > 0 && p.depth > p.nestingLimit {
		return nil, p.newError(ErrNestingLimit, open, fmt.Sprintf("parentheses nested deeper than %d", p.nestingLimit))
	}

	if err := p.eat(tokenLParen); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(tokenRParen); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) errorExpected(tok Token, expected string) error {
	return p.newError(ErrSyntax, tok, fmt.Sprintf("expected %s, got %s", expected, tokenLabel(tok)))
}

func (p *parser) newError(kind error, tok Token, msg string) error {
	return &ParseError{Kind: kind, Pos: tok.Pos, Msg: msg, Source: p.l.input}
}
