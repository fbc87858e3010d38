package stream_test

import (
	"testing"

	"github.com/warplang/warpc/internal/stream"
	"github.com/warplang/warpc/internal/token"
)

// sliceSource replays a canned list of tokens, emitting EOF forever after.
type sliceSource struct {
	toks []token.Token
	pos  int
}

func (s *sliceSource) Next() token.Token {
	if s.pos >= len(s.toks) {
		return token.Token{Kind: token.EOF}
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func kindsOnly(ks ...token.Kind) *sliceSource {
	toks := make([]token.Token, len(ks))
	for i, k := range ks {
		toks[i] = token.Token{Kind: k}
	}
	return &sliceSource{toks: toks}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := stream.New(kindsOnly(token.Ident, token.Plus))
	if s.PeekKind() != token.Ident {
		t.Fatalf("peek = %v", s.PeekKind())
	}
	if s.PeekKind() != token.Ident {
		t.Fatal("second peek should see the same token")
	}
	if s.Next().Kind != token.Ident {
		t.Fatal("next should consume the peeked token")
	}
	if s.PeekKind() != token.Plus {
		t.Fatalf("peek after consume = %v", s.PeekKind())
	}
}

func TestPeekOneAndPeekAny(t *testing.T) {
	s := stream.New(kindsOnly(token.Plus))
	if !s.PeekOne(token.Plus) {
		t.Fatal("PeekOne should match")
	}
	if s.PeekOne(token.Minus) {
		t.Fatal("PeekOne should not match Minus")
	}
	if !s.PeekAny(token.Minus, token.Plus) {
		t.Fatal("PeekAny should match one of the kinds")
	}
	if s.PeekAny(token.Minus, token.Star) {
		t.Fatal("PeekAny should not match")
	}
}

func TestExpectOneSuccess(t *testing.T) {
	s := stream.New(kindsOnly(token.LParen, token.RParen))
	tok, err := s.ExpectOne(token.LParen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.LParen {
		t.Fatalf("tok = %v", tok.Kind)
	}
	if s.PeekKind() != token.RParen {
		t.Fatal("ExpectOne should have consumed exactly one token")
	}
}

func TestExpectOneFailureDoesNotConsume(t *testing.T) {
	s := stream.New(kindsOnly(token.Ident))
	_, err := s.ExpectOne(token.LParen)
	if err == nil {
		t.Fatal("expected an error")
	}
	var ue *stream.UnexpectedToken
	if !errorsAs(err, &ue) {
		t.Fatalf("error type = %T, want *UnexpectedToken", err)
	}
	if s.PeekKind() != token.Ident {
		t.Fatal("a failed Expect must not consume")
	}
}

func errorsAs(err error, target **stream.UnexpectedToken) bool {
	ue, ok := err.(*stream.UnexpectedToken)
	if ok {
		*target = ue
	}
	return ok
}

func TestEOF(t *testing.T) {
	s := stream.New(kindsOnly())
	if !s.EOF() {
		t.Fatal("empty source should report EOF immediately")
	}
}

func TestUnexpectedTokenErrorMessage(t *testing.T) {
	err := &stream.UnexpectedToken{Got: token.Token{Kind: token.Ident}}
	if got := err.Error(); got != "unexpected token ident" {
		t.Fatalf("Error() = %q", got)
	}

	err2 := &stream.UnexpectedToken{Got: token.Token{Kind: token.Ident}, Expected: []token.Kind{token.Plus}}
	want := "unexpected token ident, expected one of [+]"
	if got := err2.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestRollingCommaSeparatedNoTrailing(t *testing.T) {
	s := stream.New(kindsOnly(token.LParen, token.Ident, token.Comma, token.Ident, token.RParen))
	lp, rp := token.LParen, token.RParen
	comma := token.Comma
	out, err := stream.Rolling(s, &lp, &comma, &rp, false, false, func() (token.Kind, error) {
		tok, err := s.ExpectOne(token.Ident)
		return tok.Kind, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}
}

func TestRollingAllowsTrailingSeparator(t *testing.T) {
	s := stream.New(kindsOnly(token.LBracket, token.Ident, token.Comma, token.RBracket))
	lb, rb := token.LBracket, token.RBracket
	comma := token.Comma
	out, err := stream.Rolling(s, &lb, &comma, &rb, false, true, func() (token.Kind, error) {
		tok, err := s.ExpectOne(token.Ident)
		return tok.Kind, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d items, want 1", len(out))
	}
	if !s.EOF() {
		t.Fatal("trailing separator and end bracket should both be consumed")
	}
}

func TestRollingEmptyWhenNotAtLeastOne(t *testing.T) {
	s := stream.New(kindsOnly(token.LParen, token.RParen))
	lp, rp := token.LParen, token.RParen
	comma := token.Comma
	out, err := stream.Rolling(s, &lp, &comma, &rp, false, false, func() (token.Kind, error) {
		tok, err := s.ExpectOne(token.Ident)
		return tok.Kind, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d items, want 0", len(out))
	}
}

func TestRollingAtLeastOneRejectsEmpty(t *testing.T) {
	s := stream.New(kindsOnly(token.LParen, token.RParen))
	lp, rp := token.LParen, token.RParen
	comma := token.Comma
	_, err := stream.Rolling(s, &lp, &comma, &rp, true, false, func() (token.Kind, error) {
		tok, err := s.ExpectOne(token.Ident)
		return tok.Kind, err
	})
	if err == nil {
		t.Fatal("expected an error for an empty at-least-one roll")
	}
}
