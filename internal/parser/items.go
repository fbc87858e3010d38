package parser

import (
	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/stream"
	"github.com/warplang/warpc/internal/token"
)

// parseGenericParams parses an optional `<T, U>` declaration-site generic
// parameter list; returns nil if none is present.
func (p *Parser) parseGenericParams() ([]token.Token, error) {
	if !p.peekIs(token.Lt) {
		return nil, nil
	}
	p.nextToken() // consume '<'

	var params []token.Token
	for {
		if !p.peekIs(token.Ident) && !p.peekIs(token.ModuleName) {
			return nil, p.errorf("expected generic parameter name, got %s", p.stream.Peek())
		}
		p.nextToken()
		params = append(params, p.cur)
		if p.peekIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.closeGeneric(); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseUse() (*ast.Use, error) {
	useTok := p.cur // KwUse

	if _, err := p.expect(token.ModuleName); err != nil {
		return nil, err
	}
	segments := []token.Token{p.cur}

	for p.peekIs(token.ColonColon) {
		p.nextToken() // consume '::'
		if p.peekIs(token.Star) || p.peekIs(token.LBrace) {
			break
		}
		if _, err := p.expect(token.ModuleName); err != nil {
			return nil, err
		}
		segments = append(segments, p.cur)
	}

	use := &ast.Use{Sp: useTok.Span}

	switch {
	case p.peekIs(token.Star):
		p.nextToken()
		use.Prefix = &ast.TypeRef{Parts: segments, Sp: span.Merge(useTok.Span, p.cur.Span)}
		use.Trails = []ast.UseTrail{{Kind: ast.TrailStar, Sp: p.cur.Span}}

	case p.peekIs(token.LBrace):
		p.nextToken() // consume '{'
		use.Prefix = &ast.TypeRef{Parts: segments, Sp: span.Merge(useTok.Span, p.cur.Span)}
		trails, err := p.parseUseTrailGroup()
		if err != nil {
			return nil, err
		}
		use.Trails = trails

	default:
		// Last collected segment is itself the trail target; everything
		// before it is the prefix.
		last := segments[len(segments)-1]
		prefixParts := segments[:len(segments)-1]
		trail, err := p.parseUseTrailTail(last)
		if err != nil {
			return nil, err
		}
		use.Prefix = &ast.TypeRef{Parts: prefixParts, Sp: useTok.Span}
		use.Trails = []ast.UseTrail{trail}
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	use.Sp = span.Merge(use.Sp, p.cur.Span)
	return use, nil
}

// parseUseTrailTail parses the optional `as Alias` following a bare name
// trail; name has already been consumed.
func (p *Parser) parseUseTrailTail(name token.Token) (ast.UseTrail, error) {
	path := &ast.TypeRef{Parts: []token.Token{name}, Sp: name.Span}
	if p.peekIs(token.KwAs) {
		p.nextToken() // consume 'as'
		if _, err := p.expect(token.ModuleName); err != nil {
			return ast.UseTrail{}, err
		}
		alias := &ast.TypeRef{Parts: []token.Token{p.cur}, Sp: p.cur.Span}
		return ast.UseTrail{Kind: ast.TrailRename, Path: path, As: alias, Sp: span.Merge(name.Span, p.cur.Span)}, nil
	}
	return ast.UseTrail{Kind: ast.TrailStatic, Path: path, Sp: name.Span}, nil
}

// parseUseTrailGroup parses the comma-separated trail list inside
// `use P::{ ... };`, up to and including the closing brace.
func (p *Parser) parseUseTrailGroup() ([]ast.UseTrail, error) {
	var trails []ast.UseTrail
	for {
		if p.peekIs(token.Star) {
			p.nextToken()
			trails = append(trails, ast.UseTrail{Kind: ast.TrailStar, Sp: p.cur.Span})
		} else {
			if _, err := p.expect(token.ModuleName); err != nil {
				return nil, err
			}
			trail, err := p.parseUseTrailTail(p.cur)
			if err != nil {
				return nil, err
			}
			trails = append(trails, trail)
		}
		if p.peekIs(token.Comma) {
			p.nextToken()
			if p.peekIs(token.RBrace) {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return trails, nil
}

func (p *Parser) parseModule() (*ast.Module, error) {
	start := p.cur // KwModule
	prefix, err := func() (*ast.TypeRef, error) {
		if _, err := p.expect(token.ModuleName); err != nil {
			return nil, err
		}
		return p.parseTypeRef()
	}()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	mod := &ast.Module{Prefix: prefix}
	for !p.peekIs(token.RBrace) {
		p.nextToken()
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		mod.Items = append(mod.Items, item)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	mod.Sp = span.Merge(start.Span, p.cur.Span)
	return mod, nil
}

func (p *Parser) parseStruct() (*ast.Struct, error) {
	start := p.cur // KwStruct
	name, err := p.expect(token.ModuleName)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	startBrace := token.LBrace
	endBrace := token.RBrace
	comma := token.Comma
	fields, err := stream.Rolling(parserStream{p}, &startBrace, &comma, &endBrace, false, true,
		func() (ast.Field, error) {
			fname, err := p.expect(token.Ident)
			if err != nil {
				return ast.Field{}, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return ast.Field{}, err
			}
			p.nextToken()
			typ, err := p.parseTypeRef()
			if err != nil {
				return ast.Field{}, err
			}
			return ast.Field{Name: fname, Type: typ}, nil
		})
	if err != nil {
		return nil, err
	}

	return &ast.Struct{
		Name:     name,
		Generics: generics,
		Fields:   fields,
		Sp:       span.Merge(start.Span, p.cur.Span),
	}, nil
}

func (p *Parser) parseEnum() (*ast.Enum, error) {
	start := p.cur // KwEnum
	name, err := p.expect(token.ModuleName)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	startBrace := token.LBrace
	endBrace := token.RBrace
	comma := token.Comma
	variants, err := stream.Rolling(parserStream{p}, &startBrace, &comma, &endBrace, false, true,
		p.parseEnumVariant)
	if err != nil {
		return nil, err
	}

	return &ast.Enum{
		Name:     name,
		Generics: generics,
		Variants: variants,
		Sp:       span.Merge(start.Span, p.cur.Span),
	}, nil
}

func (p *Parser) parseEnumVariant() (ast.EnumVariant, error) {
	name, err := p.expect(token.ModuleName)
	if err != nil {
		return ast.EnumVariant{}, err
	}

	switch {
	case p.peekIs(token.Assign):
		p.nextToken() // consume '='
		if _, err := p.expect(token.Integer); err != nil {
			return ast.EnumVariant{}, err
		}
		val, err := intLiteralValue(p.cur)
		if err != nil {
			return ast.EnumVariant{}, p.errorf("invalid enum constant %q", p.cur.Value)
		}
		return ast.EnumVariant{Name: name, Kind: ast.VariantValue, Value: &val, Sp: span.Merge(name.Span, p.cur.Span)}, nil

	case p.peekIs(token.LParen):
		p.nextToken() // consume '('
		rparen := token.RParen
		comma := token.Comma
		types, err := stream.Rolling(parserStream{p}, (*token.Kind)(nil), &comma, &rparen, true, false,
			func() (*ast.TypeRef, error) {
				p.nextToken()
				return p.parseTypeRef()
			})
		if err != nil {
			return ast.EnumVariant{}, err
		}
		return ast.EnumVariant{Name: name, Kind: ast.VariantUnit, Types: types, Sp: span.Merge(name.Span, p.cur.Span)}, nil

	default:
		return ast.EnumVariant{Name: name, Kind: ast.VariantSimple, Sp: name.Span}, nil
	}
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	start := p.cur
	export := false
	if p.curIs(token.KwExport) {
		export = true
		if _, err := p.expect(token.KwFn); err != nil {
			return nil, err
		}
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	lparen := token.LParen
	rparen := token.RParen
	comma := token.Comma
	params, err := stream.Rolling(parserStream{p}, &lparen, &comma, &rparen, false, true, p.parseParam)
	if err != nil {
		return nil, err
	}

	var retval *ast.TypeRef
	if p.peekIs(token.Colon) {
		p.nextToken() // consume ':'
		p.nextToken()
		retval, err = p.parseTypeRef()
		if err != nil {
			return nil, err
		}
	}

	var body []ast.Stmt
	if p.peekIs(token.LBrace) {
		p.nextToken()
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:     name,
		Generics: generics,
		Params:   params,
		RetVal:   retval,
		Body:     body,
		Export:   export,
		Sp:       span.Merge(start.Span, p.cur.Span),
	}, nil
}

// parseParam parses one positional parameter. A receiver is spelled as the
// plain identifier "this" (ParamThis); "_" is ParamIgnore; anything else is
// ParamStatic.
func (p *Parser) parseParam() (ast.Param, error) {
	if _, err := p.expect(token.Ident); err != nil {
		return ast.Param{}, err
	}
	nameTok := p.cur

	if nameTok.Value == "this" {
		return ast.Param{Kind: ast.ParamThis, Name: nameTok, Sp: nameTok.Span}, nil
	}

	kind := ast.ParamStatic
	if nameTok.Value == "_" {
		kind = ast.ParamIgnore
	}

	if _, err := p.expect(token.Colon); err != nil {
		return ast.Param{}, err
	}
	p.nextToken()
	typ, err := p.parseTypeRef()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Kind: kind, Name: nameTok, Type: typ, Sp: span.Merge(nameTok.Span, typ.Span())}, nil
}
