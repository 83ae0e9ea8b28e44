package calc

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenNumber TokenType = "NUMBER"

	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLParen   TokenType = "("
	tokenRParen   TokenType = ")"
)

// Token captures lexical information for the parser. Only number tokens
// carry a meaningful literal: the digit sequence as written.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

var singleCharTokens = map[byte]TokenType{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenAsterisk,
	'/': tokenSlash,
	'(': tokenLParen,
	')': tokenRParen,
}
