package expr

import (
	"regexp"
)

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	TokenKeyword TokenType = iota
	TokenAnd     // &&
	TokenOr      // ||
	TokenNot     // !
	TokenLParen  // (
	TokenRParen  // )
)

// Token is one atomic lexical unit of a boolean expression.
type Token struct {
	Type TokenType
	Text string
}

var (
	// Textual operators are normalized to their symbol forms before
	// splitting. Whole-word only, so keywords like "ANDROID" survive.
	wordAnd = regexp.MustCompile(`(?i)\bAND\b`)
	wordOr  = regexp.MustCompile(`(?i)\bOR\b`)
	wordNot = regexp.MustCompile(`(?i)\bNOT\b`)

	// Operators and parens are atomic; anything else up to whitespace or an
	// operator character is a keyword.
	tokenPattern = regexp.MustCompile(`!|\|\||&&|\(|\)|[^\s!()|&]+`)
)

// Tokenize splits a raw boolean expression into tokens. AND, OR and NOT are
// recognized case-insensitively as whole words and treated as `&&`, `||` and
// `!`. A keyword token never contains whitespace, parens or operator
// characters. Empty input yields an empty sequence.
func Tokenize(input string) []Token {
	normalized := wordAnd.ReplaceAllString(input, "&&")
	normalized = wordOr.ReplaceAllString(normalized, "||")
	normalized = wordNot.ReplaceAllString(normalized, "!")

	raw := tokenPattern.FindAllString(normalized, -1)
	toks := make([]Token, 0, len(raw))
	for _, text := range raw {
		switch text {
		case "&&":
			toks = append(toks, Token{Type: TokenAnd, Text: text})
		case "||":
			toks = append(toks, Token{Type: TokenOr, Text: text})
		case "!":
			toks = append(toks, Token{Type: TokenNot, Text: text})
		case "(":
			toks = append(toks, Token{Type: TokenLParen, Text: text})
		case ")":
			toks = append(toks, Token{Type: TokenRParen, Text: text})
		default:
			toks = append(toks, Token{Type: TokenKeyword, Text: text})
		}
	}
	return toks
}
