package parser

import (
	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// parseBlock parses statements up to a closing brace. cur must be the
// opening '{' on entry; cur is the closing '}' on return.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.peekIs(token.RBrace) {
		p.nextToken()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Kind {
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	start := p.cur
	if p.peekIs(token.Semicolon) {
		p.nextToken()
		return &ast.ReturnStmt{Sp: span.Merge(start.Span, p.cur.Span)}, nil
	}
	p.nextToken()
	val, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: val, Sp: span.Merge(start.Span, p.cur.Span)}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	start := p.cur
	val, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Value: val, Sp: span.Merge(start.Span, p.cur.Span)}, nil
}

func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	start := p.cur
	p.nextToken()
	// The '{' after the condition opens the then-block, so the brace index
	// form is switched off while the condition is parsed.
	index := p.infixFns[token.LBrace]
	delete(p.infixFns, token.LBrace)
	cond, err := p.parseExpression(LOWEST)
	p.infixFns[token.LBrace] = index
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock []ast.Stmt
	if p.peekIs(token.KwElse) {
		p.nextToken() // consume 'else'
		if _, err := p.expect(token.LBrace); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock, Sp: span.Merge(start.Span, p.cur.Span)}, nil
}
