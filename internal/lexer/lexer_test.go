package lexer_test

import (
	"testing"

	"github.com/warplang/warpc/internal/lexer"
	"github.com/warplang/warpc/internal/token"
)

func collect(input string) []token.Token {
	l := lexer.New(input, 0)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	got := kinds(collect(input))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v kinds, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %v, want %v", input, i, got[i], want[i])
		}
	}
}

func TestIdentVsModuleName(t *testing.T) {
	assertKinds(t, "foo Bar", token.Ident, token.ModuleName, token.EOF)
}

func TestKeywords(t *testing.T) {
	assertKinds(t, "struct enum fn use module",
		token.KwStruct, token.KwEnum, token.KwFn, token.KwUse, token.KwModule, token.EOF)
}

func TestNumbers(t *testing.T) {
	toks := collect("42 3.14")
	if toks[0].Kind != token.Integer || toks[0].Value != "42" {
		t.Fatalf("integer = %+v", toks[0])
	}
	if toks[1].Kind != token.Float || toks[1].Value != "3.14" {
		t.Fatalf("float = %+v", toks[1])
	}
}

func TestIntegerDotWithoutFraction(t *testing.T) {
	// "1." with no following digit is not a float: Dot stays its own token.
	assertKinds(t, "1.foo", token.Integer, token.Dot, token.Ident, token.EOF)
}

func TestStrings(t *testing.T) {
	toks := collect(`"hi" 'lo'`)
	if toks[0].Kind != token.StringDouble || toks[0].Value != "hi" {
		t.Fatalf("double = %+v", toks[0])
	}
	if toks[1].Kind != token.StringSingle || toks[1].Value != "lo" {
		t.Fatalf("single = %+v", toks[1])
	}
}

func TestStringEscapedQuoteDoesNotTerminate(t *testing.T) {
	toks := collect(`"a\"b"`)
	if toks[0].Kind != token.StringDouble || toks[0].Value != `a\"b` {
		t.Fatalf("escaped string = %+v", toks[0])
	}
}

func TestTwoCharOperators(t *testing.T) {
	assertKinds(t, "<< >> <= >= == != && ||",
		token.Shl, token.Shr, token.Le, token.Ge, token.EqEq, token.NotEq, token.AmpAmp, token.PipePipe, token.EOF)
}

func TestOneCharFallbackWhenNoSecondChar(t *testing.T) {
	assertKinds(t, "< > = ! & |",
		token.Lt, token.Gt, token.Assign, token.Bang, token.Amp, token.Pipe, token.EOF)
}

func TestDollar(t *testing.T) {
	assertKinds(t, "$slip::ptr",
		token.Dollar, token.Ident, token.ColonColon, token.Ident, token.EOF)
}

func TestColonColon(t *testing.T) {
	assertKinds(t, "a::b", token.Ident, token.ColonColon, token.Ident, token.EOF)
}

func TestCommentsAndWhitespaceAreIgnored(t *testing.T) {
	assertKinds(t, "a // comment\nb", token.Ident, token.Ident, token.EOF)
}

func TestIllegalCharacter(t *testing.T) {
	toks := collect("@")
	if toks[0].Kind != token.Illegal || toks[0].Value != "@" {
		t.Fatalf("illegal = %+v", toks[0])
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	assertKinds(t, "café", token.Ident, token.EOF)
}

func TestSpanTracksLineAndColumn(t *testing.T) {
	toks := collect("a\nbb")
	second := toks[1]
	if second.Span.Start.Line != 2 || second.Span.Start.Column != 1 {
		t.Fatalf("second token start = %+v, want line 2 col 1", second.Span.Start)
	}
}
