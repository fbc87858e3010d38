package parser

import (
	"strconv"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// parseExpression is the Pratt core: parse one prefix-or-atom expression,
// then keep folding infix/suffix continuations into it for as long as the
// next token binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		return nil, p.errorf("no prefix parse function for %s", p.cur)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.stream.Peek().Kind]
		if !ok {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseLiteral() (ast.Expr, error) {
	return &ast.Literal{Tok: p.cur, Sp: p.cur.Span}, nil
}

func (p *Parser) parseIdentifier() (ast.Expr, error) {
	if p.cur.Value == "_" {
		return &ast.Underscore{Sp: p.cur.Span}, nil
	}
	return &ast.Identifier{Name: p.cur.Value, Sp: p.cur.Span}, nil
}

// parseTypeExprAtom parses a ModuleName-led path (possibly `::`-joined, and
// possibly generic) in expression position — the callee of an Expression
// call such as `Point(x, y)` or `Option<i32>(v)`.
func (p *Parser) parseTypeExprAtom() (ast.Expr, error) {
	ref, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	return &ast.TypeExpr{Ref: ref}, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expr, error) {
	op := p.cur
	p.nextToken()
	operand, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpr{Op: op, Operand: operand, Sp: span.Merge(op.Span, operand.Span())}, nil
}

func (p *Parser) parseInfixExpression(left ast.Expr) (ast.Expr, error) {
	op := p.cur
	precedence := p.curPrecedence()
	p.nextToken()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpr{Op: op, Left: left, Right: right, Sp: span.Merge(left.Span(), right.Span())}, nil
}

// parseRightAssocInfixExpression recurses at precedence-1, the standard
// precedence-climbing trick that turns the left-associative loop into a
// right-associative one (used for assignment; level 13).
func (p *Parser) parseRightAssocInfixExpression(left ast.Expr) (ast.Expr, error) {
	op := p.cur
	precedence := p.curPrecedence()
	p.nextToken()
	right, err := p.parseExpression(precedence - 1)
	if err != nil {
		return nil, err
	}
	if op.Kind == token.Assign {
		return &ast.AssignExpr{Target: left, Value: right, Sp: span.Merge(left.Span(), right.Span())}, nil
	}
	return &ast.InfixExpr{Op: op, Left: left, Right: right, Sp: span.Merge(left.Span(), right.Span())}, nil
}

// parseAccessOrCall handles `.`: parses the member name and folds it into an
// AccessExpr. A following `(` is handled by parseCallExpression running
// next, which rewrites an Access base into a Unified call.
func (p *Parser) parseAccessOrCall(left ast.Expr) (ast.Expr, error) {
	dot := p.cur
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	return &ast.AccessExpr{Receiver: left, Name: name, Sp: span.Merge(left.Span(), dot.Span)}, nil
}

// parseCallExpression parses `(args...)` applied to left, then rewrites it:
// a call on an Access node becomes Unified, a call on a bare Identifier
// becomes Standard, anything else becomes Expression.
func (p *Parser) parseCallExpression(left ast.Expr) (ast.Expr, error) {
	lparen := p.cur
	args, err := p.parseExprList(token.RParen)
	if err != nil {
		return nil, err
	}
	sp := span.Merge(left.Span(), span.Merge(lparen.Span, p.cur.Span))

	switch base := left.(type) {
	case *ast.AccessExpr:
		return &ast.CallExpr{
			Form:     ast.CallUnified,
			Callee:   &ast.Identifier{Name: base.Name.Value, Sp: base.Name.Span},
			Receiver: base.Receiver,
			Args:     args,
			Sp:       sp,
		}, nil
	case *ast.Identifier:
		return &ast.CallExpr{Form: ast.CallStandard, Callee: base, Args: args, Sp: sp}, nil
	default:
		return &ast.CallExpr{Form: ast.CallExpression, Callee: base, Args: args, Sp: sp}, nil
	}
}

// parseIndexExpression parses the brace-delimited index form `expr{args}`.
func (p *Parser) parseIndexExpression(left ast.Expr) (ast.Expr, error) {
	lbrace := p.cur
	args, err := p.parseExprList(token.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.IndexExpr{Target: left, Args: args, Sp: span.Merge(left.Span(), span.Merge(lbrace.Span, p.cur.Span))}, nil
}

// parseExprList parses a comma-separated expression list up to (and
// consuming) end; cur must be the opening delimiter on entry, and is the
// closing delimiter on return.
func (p *Parser) parseExprList(end token.Kind) ([]ast.Expr, error) {
	var args []ast.Expr
	if p.peekIs(end) {
		_, err := p.expect(end)
		return args, err
	}
	p.nextToken()
	for {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peekIs(token.Comma) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if _, err := p.expect(end); err != nil {
		return nil, err
	}
	return args, nil
}

// parseGroupedExpression parses `(expr)` or a tuple literal, disambiguated
// by a trailing comma: `()` is an empty tuple, `(a,)` and
// `(a, b)` are tuples, `(a)` alone is just a grouped expression.
func (p *Parser) parseGroupedExpression() (ast.Expr, error) {
	lparen := p.cur

	if p.peekIs(token.RParen) {
		p.nextToken()
		return &ast.TupleLiteral{Sp: span.Merge(lparen.Span, p.cur.Span)}, nil
	}

	p.nextToken()
	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.peekIs(token.Comma) {
		elements := []ast.Expr{first}
		for p.peekIs(token.Comma) {
			p.nextToken() // consume comma
			if p.peekIs(token.RParen) {
				break
			}
			p.nextToken()
			elem, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.TupleLiteral{Elements: elements, Sp: span.Merge(lparen.Span, p.cur.Span)}, nil
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.GroupedExpr{Inner: first, Sp: span.Merge(lparen.Span, p.cur.Span)}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	start := p.cur
	elements, err := p.parseExprList(token.RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Elements: elements, Sp: span.Merge(start.Span, p.cur.Span)}, nil
}

// parseMapLiteral parses `{k: v, ...}`. An empty `{}` parses as an empty map.
func (p *Parser) parseMapLiteral() (ast.Expr, error) {
	start := p.cur

	if p.peekIs(token.RBrace) {
		p.nextToken()
		return &ast.MapLiteral{Sp: span.Merge(start.Span, p.cur.Span)}, nil
	}

	var entries []ast.MapEntry
	p.nextToken()
	for {
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		p.nextToken()
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})

		if p.peekIs(token.Comma) {
			p.nextToken()
			if p.peekIs(token.RBrace) {
				break
			}
			p.nextToken()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.MapLiteral{Entries: entries, Sp: span.Merge(start.Span, p.cur.Span)}, nil
}

// intLiteralValue parses an Integer token's text; used by enum variant
// value parsing (items.go), kept here alongside expression literals.
func intLiteralValue(tok token.Token) (int64, error) {
	return strconv.ParseInt(tok.Value, 10, 64)
}
