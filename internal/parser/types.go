package parser

import (
	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// parseTypeRef parses a (possibly `::`-joined, possibly generic) type
// reference. On entry cur must already be the first name token, or the `$`
// that leads a built-in compiler path such as `$slip::ptr`; on return cur is
// the last token consumed.
func (p *Parser) parseTypeRef() (*ast.TypeRef, error) {
	if p.cur.Kind == token.Dollar {
		dollar := p.cur
		if !p.peekIs(token.Ident) && !p.peekIs(token.ModuleName) {
			return nil, p.errorf("expected identifier after '$', got %s", p.stream.Peek())
		}
		p.nextToken()
		first := token.Token{Kind: token.ModuleName, Span: span.Merge(dollar.Span, p.cur.Span), Value: "$" + p.cur.Value}
		return p.parseTypeRefFrom(first)
	}
	if p.cur.Kind != token.Ident && p.cur.Kind != token.ModuleName {
		return nil, p.errorf("expected type name, got %s", p.cur)
	}
	return p.parseTypeRefFrom(p.cur)
}

func (p *Parser) parseTypeRefFrom(first token.Token) (*ast.TypeRef, error) {
	ref := &ast.TypeRef{Parts: []token.Token{first}, Sp: first.Span}

	for p.peekIs(token.ColonColon) {
		p.nextToken() // consume ::
		if !p.peekIs(token.Ident) && !p.peekIs(token.ModuleName) {
			return nil, p.errorf("expected identifier after '::', got %s", p.stream.Peek())
		}
		p.nextToken()
		ref.Parts = append(ref.Parts, p.cur)
		ref.Sp = span.Merge(ref.Sp, p.cur.Span)
	}

	if p.peekIs(token.Lt) {
		p.nextToken() // consume '<'
		generics, closeSp, err := p.parseGenericArgs()
		if err != nil {
			return nil, err
		}
		ref.Generics = generics
		ref.Sp = span.Merge(ref.Sp, closeSp)
	}

	return ref, nil
}

func (p *Parser) parseGenericArgs() ([]*ast.TypeRef, span.Span, error) {
	var args []*ast.TypeRef
	for {
		p.nextToken()
		arg, err := p.parseTypeRef()
		if err != nil {
			return nil, span.Span{}, err
		}
		args = append(args, arg)
		// A pending '>' from a split '>>' closes this list too, so a comma
		// after it belongs to an enclosing list.
		if !p.pendingGT && p.peekIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.closeGeneric(); err != nil {
		return nil, span.Span{}, err
	}
	return args, p.cur.Span, nil
}

// closeGeneric consumes the '>' that closes a generic argument list,
// splitting a '>>' token into two when generics nest.
func (p *Parser) closeGeneric() error {
	if p.pendingGT {
		p.pendingGT = false
		p.cur = token.Token{Kind: token.Gt, Span: p.cur.Span}
		return nil
	}
	if p.peekIs(token.Gt) {
		p.nextToken()
		return nil
	}
	if p.peekIs(token.Shr) {
		p.nextToken() // cur is now the Shr token
		p.cur = token.Token{Kind: token.Gt, Span: p.cur.Span}
		p.pendingGT = true
		return nil
	}
	return p.errorf("expected '>' to close generic argument list, got %s", p.stream.Peek())
}
