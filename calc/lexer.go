package calc

type lexer struct {
	input string

	// offset is the byte index of ch; ch is 0 once offset reaches len(input).
	offset int
	ch     byte
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	if len(input) > 0 {
		l.ch = input[0]
	}
	return l
}

func (l *lexer) readChar() {
	if l.offset < len(l.input) {
		l.offset++
	}
	if l.offset >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.offset]
}

func (l *lexer) atEnd() bool {
	return l.offset >= len(l.input)
}

// NextToken returns the next token and advances past it. It never fails:
// characters outside the grammar come back as ILLEGAL tokens and are left
// for the parser to reject. Once the input is exhausted every call yields EOF.
func (l *lexer) NextToken() Token {
	for !l.atEnd() {
		switch {
		case isWhitespace(l.ch):
			l.skipWhitespace()
			continue
		case isDigit(l.ch):
			pos := l.offset
			return Token{Type: tokenNumber, Literal: l.readNumber(), Pos: pos}
		}

		tok := Token{Type: tokenIllegal, Literal: string(l.ch), Pos: l.offset}
		if tt, ok := singleCharTokens[l.ch]; ok {
			tok.Type = tt
		}
		l.readChar()
		return tok
	}

	return Token{Type: tokenEOF, Pos: len(l.input)}
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() && isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *lexer) readNumber() string {
	start := l.offset
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.offset]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
