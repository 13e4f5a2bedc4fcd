package goarith

import (
	"errors"
	"fmt"
	"strconv"
)

/* grammar

expr   = term { "+", term } | term, "-", expr ;
term   = "(", expr, ")" | number ;
number = digit, { digit } ;

Addition folds left to right; subtraction takes a full expr on the
right and so associates to the right: "1-2-3" parses as 1-(2-3).
*/

var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// ExpectedError reports that a specific token was required at some
// position but a different one was present.
type ExpectedError struct {
	Expected string
	Found    Token
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("expected %s, found '%s'", e.Expected, e.Found)
}

type ExprType int

const (
	ExprNumber ExprType = iota
	ExprAdd
	ExprSub
)

// Expr is a node in the parsed arithmetic tree. Each node exclusively
// owns its children; trees are built bottom-up by the parser and never
// mutated afterwards.
type Expr struct {
	Type  ExprType
	Value int64
	Left  *Expr
	Right *Expr
}

func Number(v int64) *Expr {
	return &Expr{Type: ExprNumber, Value: v}
}

func Add(l, r *Expr) *Expr {
	return &Expr{Type: ExprAdd, Left: l, Right: r}
}

func Sub(l, r *Expr) *Expr {
	return &Expr{Type: ExprSub, Left: l, Right: r}
}

func (e *Expr) precedence() int {
	if e.Type == ExprNumber {
		return 1
	}
	return 0
}

// String renders the tree back to source form, parenthesizing a child
// whenever its glue is not stronger than its parent's.
func (e *Expr) String() string {
	switch e.Type {
	case ExprAdd, ExprSub:
		op := "+"
		if e.Type == ExprSub {
			op = "-"
		}
		left := e.Left.String()
		right := e.Right.String()
		if e.Left.precedence() <= e.precedence() {
			left = "(" + left + ")"
		}
		if e.Right.precedence() <= e.precedence() {
			right = "(" + right + ")"
		}
		return left + op + right
	default:
		return strconv.FormatInt(e.Value, 10)
	}
}

// Each rule consumes a prefix of tokens and returns the parsed node
// together with the unconsumed remainder.

func exprRule(tokens []Token) (*Expr, []Token, error) {
	node, rest, err := termRule(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 {
		switch rest[0].Type {
		case TokenPlus:
			rhs, r, err := termRule(rest[1:])
			if err != nil {
				return nil, nil, err
			}
			node = Add(node, rhs)
			rest = r
		case TokenMinus:
			rhs, r, err := exprRule(rest[1:])
			if err != nil {
				return nil, nil, err
			}
			return Sub(node, rhs), r, nil
		default:
			return node, rest, nil
		}
	}
	return node, rest, nil
}

func termRule(tokens []Token) (*Expr, []Token, error) {
	if len(tokens) == 0 {
		return nil, nil, ErrUnexpectedEndOfInput
	}
	if tokens[0].Type != TokenLParen {
		return numberRule(tokens)
	}
	node, rest, err := exprRule(tokens[1:])
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 {
		return nil, nil, ErrUnexpectedEndOfInput
	}
	if rest[0].Type != TokenRParen {
		return nil, nil, &ExpectedError{Expected: "right parenthesis", Found: rest[0]}
	}
	return node, rest[1:], nil
}

func numberRule(tokens []Token) (*Expr, []Token, error) {
	if len(tokens) == 0 {
		return nil, nil, ErrUnexpectedEndOfInput
	}
	if tokens[0].Type != TokenDigit {
		return nil, nil, &ExpectedError{Expected: "digit", Found: tokens[0]}
	}
	n := tokens[0].Digit
	i := 1
	for i < len(tokens) && tokens[i].Type == TokenDigit {
		n = n*10 + tokens[i].Digit
		i++
	}
	return Number(n), tokens[i:], nil
}

// Parse tokenizes input and parses it as a single expression. Tokens
// left over after a structurally complete parse are an error.
func Parse(input string) (*Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	node, rest, err := exprRule(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, &ExpectedError{Expected: "end of input", Found: rest[0]}
	}
	return node, nil
}
