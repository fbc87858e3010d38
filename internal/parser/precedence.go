package parser

import "github.com/warplang/warpc/internal/token"

// Precedence levels, lowest binding first. NONE is the value returned for a
// token with no registered infix meaning; LOWEST is the precedence an
// expression is parsed at when nothing yet encloses it (a statement's top
// level, or inside a fresh pair of parentheses).
const (
	NONE = iota
	LOWEST
	ASSIGN
	LOGICOR
	LOGICAND
	BITOR
	BITXOR
	BITAND
	EQUALITY
	ORDERING
	SHIFT
	SUM
	PRODUCT
	PREFIX
	CALL // suffix, call, access, index — the tightest-binding level
)

var precedences = map[token.Kind]int{
	token.Assign:   ASSIGN,
	token.PipePipe: LOGICOR,
	token.AmpAmp:   LOGICAND,
	token.Pipe:     BITOR,
	token.Caret:    BITXOR,
	token.Amp:      BITAND,
	token.EqEq:     EQUALITY,
	token.NotEq:    EQUALITY,
	token.Lt:       ORDERING,
	token.Le:       ORDERING,
	token.Gt:       ORDERING,
	token.Ge:       ORDERING,
	token.Shl:      SHIFT,
	token.Shr:      SHIFT,
	token.Plus:     SUM,
	token.Minus:    SUM,
	token.Star:     PRODUCT,
	token.Slash:    PRODUCT,
	token.Percent:  PRODUCT,
	token.Dot:      CALL,
	token.LParen:   CALL,
	token.LBrace:   CALL,
}

// rightAssoc marks the operator levels that recurse with precedence-1
// instead of precedence, the standard trick for turning the left-associative
// precedence-climbing loop into a right-associative one.
var rightAssoc = map[token.Kind]bool{
	token.Assign: true,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return NONE
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.stream.Peek().Kind]; ok {
		return prec
	}
	return NONE
}
