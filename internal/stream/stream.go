// Package stream implements the token stream interface consumed by the
// parser: a lazy sequence with lookahead, delimited-list
// helpers, and fail-fast error reporting.
package stream

import (
	"fmt"

	"github.com/warplang/warpc/internal/token"
)

// Source abstracts anything that can hand back tokens one at a time — the
// lexer, in production, or a canned slice in tests.
type Source interface {
	Next() token.Token
}

// UnexpectedToken is raised when the stream is asked to expect a kind that
// the next token doesn't match, or when it runs out of input mid-construct.
// It is the only error kind any caller of TokenStream needs to handle; it is
// returned to the caller as an error, and no diagnostic is emitted for it.
type UnexpectedToken struct {
	Got      token.Token
	Expected []token.Kind
}

func (e *UnexpectedToken) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected token %s", e.Got)
	}
	return fmt.Sprintf("unexpected token %s, expected one of %v", e.Got, e.Expected)
}

// TokenStream is the interface the parser is written against.
type TokenStream interface {
	Peek() token.Token
	PeekKind() token.Kind
	PeekOne(k token.Kind) bool
	PeekAny(ks ...token.Kind) bool
	Next() token.Token
	ExpectOne(k token.Kind) (token.Token, error)
	ExpectAny(ks ...token.Kind) (token.Token, error)
	ErrorFrom(expected ...token.Kind) error
	EOF() bool
}

// Buffered is the standard TokenStream implementation: a single-token
// lookahead buffer over a Source (the lexer).
type Buffered struct {
	src  Source
	next token.Token
	has  bool
}

// New wraps src with one-token lookahead.
func New(src Source) *Buffered {
	return &Buffered{src: src}
}

func (b *Buffered) fill() {
	if !b.has {
		b.next = b.src.Next()
		b.has = true
	}
}

// Peek returns the next token without consuming it.
func (b *Buffered) Peek() token.Token {
	b.fill()
	return b.next
}

// PeekKind returns the kind of the next token.
func (b *Buffered) PeekKind() token.Kind {
	return b.Peek().Kind
}

// PeekOne reports whether the next token has kind k.
func (b *Buffered) PeekOne(k token.Kind) bool {
	return b.PeekKind() == k
}

// PeekAny reports whether the next token's kind is any of ks.
func (b *Buffered) PeekAny(ks ...token.Kind) bool {
	pk := b.PeekKind()
	for _, k := range ks {
		if pk == k {
			return true
		}
	}
	return false
}

// Next consumes and returns the next token.
func (b *Buffered) Next() token.Token {
	b.fill()
	tok := b.next
	b.has = false
	return tok
}

// ExpectOne consumes the next token if it has kind k, otherwise returns an
// UnexpectedToken error without consuming.
func (b *Buffered) ExpectOne(k token.Kind) (token.Token, error) {
	if !b.PeekOne(k) {
		return token.Token{}, b.ErrorFrom(k)
	}
	return b.Next(), nil
}

// ExpectAny consumes the next token if its kind is one of ks.
func (b *Buffered) ExpectAny(ks ...token.Kind) (token.Token, error) {
	if !b.PeekAny(ks...) {
		return token.Token{}, b.ErrorFrom(ks...)
	}
	return b.Next(), nil
}

// ErrorFrom builds an UnexpectedToken error describing a mismatch against
// the next token, for the given expected kinds.
func (b *Buffered) ErrorFrom(expected ...token.Kind) error {
	return &UnexpectedToken{Got: b.Peek(), Expected: expected}
}

// EOF reports whether the stream is exhausted.
func (b *Buffered) EOF() bool {
	return b.PeekOne(token.EOF)
}

// Rolling parses a homogeneous delimited list ("roll" in the glossary):
// optional start token, body elements separated by sep, optional trailing
// separator, optional end token. atLeastOne requires at least one body
// element; trail permits (but does not require) a separator before end.
func Rolling[T any](
	s TokenStream,
	start, sep, end *token.Kind,
	atLeastOne bool,
	trail bool,
	body func() (T, error),
) ([]T, error) {
	if start != nil {
		if _, err := s.ExpectOne(*start); err != nil {
			return nil, err
		}
	}

	var out []T
	isEnd := func() bool {
		return end != nil && s.PeekOne(*end)
	}

	if atLeastOne && isEnd() {
		return nil, s.ErrorFrom()
	}

	for !isEnd() && !s.EOF() {
		item, err := body()
		if err != nil {
			return nil, err
		}
		out = append(out, item)

		if sep != nil && s.PeekOne(*sep) {
			s.Next()
			if trail && isEnd() {
				break
			}
			continue
		}
		break
	}

	if end != nil {
		if _, err := s.ExpectOne(*end); err != nil {
			return nil, err
		}
	}

	if atLeastOne && len(out) == 0 {
		return nil, s.ErrorFrom()
	}

	return out, nil
}
