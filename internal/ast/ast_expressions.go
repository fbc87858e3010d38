package ast

import (
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// Expr is the tagged union of expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Literal is a scalar literal: integer, float, string, or boolean.
type Literal struct {
	Tok token.Token
	Sp  span.Span
}

func (l *Literal) Span() span.Span { return l.Sp }
func (*Literal) exprNode()         {}

// Identifier is a bare lowercase name reference (a local, parameter, or
// function name — never a type).
type Identifier struct {
	Name string
	Sp   span.Span
}

func (i *Identifier) Span() span.Span { return i.Sp }
func (*Identifier) exprNode()         {}

// Underscore is the `_` placeholder expression, used where a value is
// syntactically required but semantically discarded.
type Underscore struct {
	Sp span.Span
}

func (u *Underscore) Span() span.Span { return u.Sp }
func (*Underscore) exprNode()         {}

// TypeExpr is a reference to a type used in expression position, e.g. the
// callee of an Expression call (`Point(x, y)`) or the target of a brace
// index (`Point{1, 2}`).
type TypeExpr struct {
	Ref *TypeRef
}

func (t *TypeExpr) Span() span.Span { return t.Ref.Span() }
func (*TypeExpr) exprNode()         {}

// PrefixExpr is a unary prefix operation: -x, !x.
type PrefixExpr struct {
	Op      token.Token
	Operand Expr
	Sp      span.Span
}

func (p *PrefixExpr) Span() span.Span { return p.Sp }
func (*PrefixExpr) exprNode()         {}

// PostfixExpr is a unary postfix operation, applied after its operand.
type PostfixExpr struct {
	Op      token.Token
	Operand Expr
	Sp      span.Span
}

func (p *PostfixExpr) Span() span.Span { return p.Sp }
func (*PostfixExpr) exprNode()         {}

// InfixExpr is a binary operation: left Op right.
type InfixExpr struct {
	Op    token.Token
	Left  Expr
	Right Expr
	Sp    span.Span
}

func (i *InfixExpr) Span() span.Span { return i.Sp }
func (*InfixExpr) exprNode()         {}

// AccessExpr is `receiver.name` — member or associated-function access.
type AccessExpr struct {
	Receiver Expr
	Name     token.Token
	Sp       span.Span
}

func (a *AccessExpr) Span() span.Span { return a.Sp }
func (*AccessExpr) exprNode()         {}

// CallForm distinguishes the three surface syntaxes a call can arrive in,
// before the parser rewrites all of them down to one canonical shape.
type CallForm int

const (
	// CallUnified is `receiver.method(args...)`, a call whose callee is an
	// access expression.
	CallUnified CallForm = iota
	// CallStandard is `callee(args...)` on a bare identifier, an ordinary
	// function application.
	CallStandard
	// CallExpression is a call on any other callee, e.g. the type
	// constructor call `Point(x, y)`.
	CallExpression
)

// CallExpr is a function/constructor application, after rewriting. Callee
// holds the thing being called: for CallUnified an Identifier carrying the
// access's member name, otherwise the callee expression itself. For
// CallUnified, Receiver holds the access's receiver; it is not added to Args.
type CallExpr struct {
	Form     CallForm
	Callee   Expr
	Receiver Expr // non-nil only for CallUnified
	Args     []Expr
	Sp       span.Span
}

func (c *CallExpr) Span() span.Span { return c.Sp }
func (*CallExpr) exprNode()         {}

// IndexExpr is the brace-delimited index form `expr{args...}`, used for
// enum/struct literal construction with named or positional fields.
type IndexExpr struct {
	Target Expr
	Args   []Expr
	Sp     span.Span
}

func (ix *IndexExpr) Span() span.Span { return ix.Sp }
func (*IndexExpr) exprNode()          {}

// ArrayLiteral is a bracketed, comma-separated list of elements.
type ArrayLiteral struct {
	Elements []Expr
	Sp       span.Span
}

func (a *ArrayLiteral) Span() span.Span { return a.Sp }
func (*ArrayLiteral) exprNode()         {}

// TupleLiteral is a parenthesized, comma-separated list of elements; empty
// parentheses or any comma (including a trailing one, as in `(a,)`)
// distinguish it from a grouped expression.
type TupleLiteral struct {
	Elements []Expr
	Sp       span.Span
}

func (t *TupleLiteral) Span() span.Span { return t.Sp }
func (*TupleLiteral) exprNode()         {}

// MapEntry is one key:value pair within a MapLiteral.
type MapEntry struct {
	Key   Expr
	Value Expr
}

// MapLiteral is a brace-delimited, comma-separated list of key:value pairs.
type MapLiteral struct {
	Entries []MapEntry
	Sp      span.Span
}

func (m *MapLiteral) Span() span.Span { return m.Sp }
func (*MapLiteral) exprNode()         {}

// GroupedExpr is a parenthesized single expression, kept as its own node
// (rather than unwrapped) so that its span includes the parentheses.
type GroupedExpr struct {
	Inner Expr
	Sp    span.Span
}

func (g *GroupedExpr) Span() span.Span { return g.Sp }
func (*GroupedExpr) exprNode()         {}

// AssignExpr is `target = value`, valid only where the grammar allows an
// expression statement; the parser accepts any expression as target and
// does not check that it is assignable.
type AssignExpr struct {
	Target Expr
	Value  Expr
	Sp     span.Span
}

func (a *AssignExpr) Span() span.Span { return a.Sp }
func (*AssignExpr) exprNode()         {}
