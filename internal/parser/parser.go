// Package parser implements the Pratt expression parser and the minimal
// recursive descent needed to drive it from item and statement context.
package parser

import (
	"fmt"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/stream"
	"github.com/warplang/warpc/internal/token"
)

type prefixFn func() (ast.Expr, error)
type infixFn func(left ast.Expr) (ast.Expr, error)

// Parser drives a stream.TokenStream through expression, item, and statement
// grammar. It holds exactly one token of its own (cur); one-token lookahead
// beyond that is delegated to the stream's own Peek.
type Parser struct {
	stream stream.TokenStream
	cur    token.Token

	prefixFns map[token.Kind]prefixFn
	infixFns  map[token.Kind]infixFn

	// pendingGT holds a synthetic '>' left over from splitting a '>>' token
	// while closing a nested generic argument list (e.g. Option<Option<T>>).
	pendingGT bool
}

// New constructs a Parser positioned at the stream's first token.
func New(s stream.TokenStream) *Parser {
	p := &Parser{stream: s}

	p.prefixFns = map[token.Kind]prefixFn{
		token.Ident:        p.parseIdentifier,
		token.ModuleName:   p.parseTypeExprAtom,
		token.Dollar:       p.parseTypeExprAtom,
		token.Integer:      p.parseLiteral,
		token.Float:        p.parseLiteral,
		token.StringSingle: p.parseLiteral,
		token.StringDouble: p.parseLiteral,
		token.KwTrue:       p.parseLiteral,
		token.KwFalse:      p.parseLiteral,
		token.Minus:        p.parsePrefixExpression,
		token.Bang:         p.parsePrefixExpression,
		token.LParen:       p.parseGroupedExpression,
		token.LBracket:     p.parseArrayLiteral,
		token.LBrace:       p.parseMapLiteral,
	}

	p.infixFns = map[token.Kind]infixFn{
		token.Plus:     p.parseInfixExpression,
		token.Minus:    p.parseInfixExpression,
		token.Star:     p.parseInfixExpression,
		token.Slash:    p.parseInfixExpression,
		token.Percent:  p.parseInfixExpression,
		token.Shl:      p.parseInfixExpression,
		token.Shr:      p.parseInfixExpression,
		token.Lt:       p.parseInfixExpression,
		token.Le:       p.parseInfixExpression,
		token.Gt:       p.parseInfixExpression,
		token.Ge:       p.parseInfixExpression,
		token.EqEq:     p.parseInfixExpression,
		token.NotEq:    p.parseInfixExpression,
		token.Amp:      p.parseInfixExpression,
		token.Caret:    p.parseInfixExpression,
		token.Pipe:     p.parseInfixExpression,
		token.AmpAmp:   p.parseInfixExpression,
		token.PipePipe: p.parseInfixExpression,
		token.Assign:   p.parseRightAssocInfixExpression,
		token.Dot:      p.parseAccessOrCall,
		token.LParen:   p.parseCallExpression,
		token.LBrace:   p.parseIndexExpression,
	}

	p.cur = p.stream.Next()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.stream.Next()
}

func (p *Parser) curIs(k token.Kind) bool {
	return p.cur.Kind == k
}

func (p *Parser) peekIs(k token.Kind) bool {
	return p.stream.PeekOne(k)
}

// expect advances past cur if the stream's next token has kind k, leaving
// cur positioned on it; otherwise it returns an UnexpectedToken error
// without consuming anything.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.peekIs(k) {
		got := p.stream.Peek()
		return token.Token{}, &stream.UnexpectedToken{Got: got, Expected: []token.Kind{k}}
	}
	p.nextToken()
	return p.cur, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), &stream.UnexpectedToken{Got: p.cur})
}

// ParseRoot parses a complete compilation unit: a sequence of top-level
// items (module, use, struct, enum, fn).
func ParseRoot(s stream.TokenStream) (*ast.Root, error) {
	p := New(s)
	root := &ast.Root{}
	for !p.curIs(token.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		root.Items = append(root.Items, item)
		p.nextToken()
	}
	return root, nil
}

func (p *Parser) parseItem() (ast.Item, error) {
	switch p.cur.Kind {
	case token.KwModule:
		return p.parseModule()
	case token.KwUse:
		return p.parseUse()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwFn, token.KwExport:
		return p.parseFunction()
	default:
		return nil, p.errorf("unexpected token %s at item position", p.cur)
	}
}
