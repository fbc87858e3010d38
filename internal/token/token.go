// Package token defines the closed set of lexical token kinds the front end
// parses against, and the Token value the lexer/parser trade in.
package token

import "github.com/warplang/warpc/internal/span"

// Kind is a closed enumeration of keyword, operator, delimiter, and
// value-bearing token kinds. Comment and Whitespace are ignored kinds: the
// token stream never surfaces them to a parser.
type Kind int

const (
	EOF Kind = iota
	Illegal

	// ignored kinds
	Comment
	Whitespace

	// value-bearing
	Ident      // lower-case-leading identifier
	ModuleName // upper-case-leading identifier (module/type name)
	Integer
	Float
	StringSingle
	StringDouble

	// keywords
	KwModule
	KwUse
	KwAs
	KwStruct
	KwEnum
	KwFn
	KwReturn
	KwIf
	KwElse
	KwTrue
	KwFalse
	KwExport

	// delimiters
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	ColonColon
	Semicolon
	Dot
	Dollar

	// operators
	Plus
	Minus
	Star
	Slash
	Percent
	Shl
	Shr
	Lt
	Le
	Gt
	Ge
	EqEq
	NotEq
	Amp
	Caret
	Pipe
	AmpAmp
	PipePipe
	Bang
	Assign
)

var names = map[Kind]string{
	EOF: "eof", Illegal: "illegal", Comment: "comment", Whitespace: "whitespace",
	Ident: "ident", ModuleName: "module-name", Integer: "integer", Float: "float",
	StringSingle: "string-single", StringDouble: "string-double",
	KwModule: "module", KwUse: "use", KwAs: "as", KwStruct: "struct", KwEnum: "enum",
	KwFn: "fn", KwReturn: "return", KwIf: "if", KwElse: "else", KwTrue: "true",
	KwFalse: "false", KwExport: "export",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Comma: ",", Colon: ":", ColonColon: "::", Semicolon: ";", Dot: ".", Dollar: "$",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Shl: "<<", Shr: ">>",
	Lt: "<", Le: "<=", Gt: ">", Ge: ">=", EqEq: "==", NotEq: "!=",
	Amp: "&", Caret: "^", Pipe: "|", AmpAmp: "&&", PipePipe: "||", Bang: "!", Assign: "=",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

// Ignored reports whether tokens of this kind are filtered before reaching a
// parser.
func (k Kind) Ignored() bool {
	return k == Comment || k == Whitespace
}

// Keywords maps source spellings to their keyword kind.
var Keywords = map[string]Kind{
	"module": KwModule, "use": KwUse, "as": KwAs, "struct": KwStruct, "enum": KwEnum,
	"fn": KwFn, "return": KwReturn, "if": KwIf, "else": KwElse, "true": KwTrue,
	"false": KwFalse, "export": KwExport,
}

// Token is a single lexeme: its kind, its source span, and — for
// value-bearing kinds — its literal text.
type Token struct {
	Kind  Kind
	Span  span.Span
	Value string
}

func (t Token) String() string {
	if t.Value != "" {
		return t.Kind.String() + "(" + t.Value + ")"
	}
	return t.Kind.String()
}
