package parser

import (
	"github.com/warplang/warpc/internal/stream"
	"github.com/warplang/warpc/internal/token"
)

// parserStream adapts a Parser to stream.TokenStream so item-level
// delimited lists (struct fields, enum variants, function parameters) can be
// parsed with stream.Rolling while keeping p.cur synchronized with every
// token Rolling consumes.
type parserStream struct{ p *Parser }

func (ps parserStream) Peek() token.Token     { return ps.p.stream.Peek() }
func (ps parserStream) PeekKind() token.Kind  { return ps.p.stream.Peek().Kind }
func (ps parserStream) PeekOne(k token.Kind) bool { return ps.p.peekIs(k) }

func (ps parserStream) PeekAny(ks ...token.Kind) bool {
	pk := ps.PeekKind()
	for _, k := range ks {
		if pk == k {
			return true
		}
	}
	return false
}

func (ps parserStream) Next() token.Token {
	ps.p.nextToken()
	return ps.p.cur
}

func (ps parserStream) ExpectOne(k token.Kind) (token.Token, error) {
	return ps.p.expect(k)
}

func (ps parserStream) ExpectAny(ks ...token.Kind) (token.Token, error) {
	for _, k := range ks {
		if ps.p.peekIs(k) {
			return ps.p.expect(k)
		}
	}
	return token.Token{}, &stream.UnexpectedToken{Got: ps.p.stream.Peek(), Expected: ks}
}

func (ps parserStream) ErrorFrom(expected ...token.Kind) error {
	return &stream.UnexpectedToken{Got: ps.p.stream.Peek(), Expected: expected}
}

func (ps parserStream) EOF() bool { return ps.p.peekIs(token.EOF) }
