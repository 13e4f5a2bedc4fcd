package goarith

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenPlus
	TokenMinus
	TokenDigit
)

// Token is one lexical unit of the input. Digit tokens carry the
// numeric value of a single digit character; the parser folds runs
// of them into numbers.
type Token struct {
	Type  TokenType
	Digit int64
}

func (t Token) String() string {
	switch t.Type {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	default:
		return string(rune('0' + t.Digit))
	}
}

type InvalidTokenError struct {
	Char rune
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: '%c'", e.Char)
}

// Tokenize scans input left to right into tokens. Whitespace is
// discarded; any rune outside the language's alphabet fails with
// *InvalidTokenError.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		switch {
		case r == '(':
			tokens = append(tokens, Token{Type: TokenLParen})
		case r == ')':
			tokens = append(tokens, Token{Type: TokenRParen})
		case r == '+':
			tokens = append(tokens, Token{Type: TokenPlus})
		case r == '-':
			tokens = append(tokens, Token{Type: TokenMinus})
		case r >= '0' && r <= '9':
			tokens = append(tokens, Token{Type: TokenDigit, Digit: int64(r - '0')})
		default:
			return nil, &InvalidTokenError{Char: r}
		}
	}
	return tokens, nil
}
