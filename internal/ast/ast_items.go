package ast

import (
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// Field is one member of a Struct.
type Field struct {
	Name token.Token
	Type *TypeRef
}

// Struct is a struct declaration: a name, its generic parameters, and its
// field map (field-name uniqueness enforced by the resolver).
type Struct struct {
	Name     token.Token
	Generics []token.Token
	Fields   []Field
	Sp       span.Span
}

func (s *Struct) Span() span.Span { return s.Sp }
func (*Struct) itemNode()         {}

// Kind returns the struct's own name as a TypeRef, the way a scope walk
// needs it for building the enclosing-types stack when a struct itself acts
// as a namespace boundary (it does not in this language, but the shape is
// shared with Module for path construction).
func (s *Struct) Kind() *TypeRef {
	return &TypeRef{Parts: []token.Token{s.Name}, Sp: s.Name.Span}
}

// EnumVariantKind distinguishes the three shapes a variant can take; the
// enum as a whole is Unit if any variant is Unit, otherwise Value if any
// variant has an explicit value, otherwise Simple.
type EnumVariantKind int

const (
	VariantSimple EnumVariantKind = iota
	VariantValue
	VariantUnit
)

// EnumVariant is one arm of an Enum declaration.
type EnumVariant struct {
	Name  token.Token
	Kind  EnumVariantKind
	Value *int64     // explicit constant, for VariantValue; nil means auto-numbered
	Types []*TypeRef // tuple payload, for VariantUnit
	Sp    span.Span
}

// Enum is an enum declaration.
type Enum struct {
	Name     token.Token
	Generics []token.Token
	Variants []EnumVariant
	Sp       span.Span
}

func (e *Enum) Span() span.Span { return e.Sp }
func (*Enum) itemNode()         {}

func (e *Enum) Kind() *TypeRef {
	return &TypeRef{Parts: []token.Token{e.Name}, Sp: e.Name.Span}
}

// ParamKind distinguishes a function parameter's binding form.
type ParamKind int

const (
	ParamStatic ParamKind = iota // name: Type
	ParamThis                    // the receiver, written without a type
	ParamIgnore                  // _: Type
)

// Param is one positional function parameter.
type Param struct {
	Kind ParamKind
	Name token.Token
	Type *TypeRef
	Sp   span.Span
}

// Function is a free function declaration.
type Function struct {
	Name     token.Token
	Generics []token.Token
	Params   []Param
	RetVal   *TypeRef // nil if no return type was written
	Body     []Stmt   // nil if the function has no body (a signature only)
	Export   bool     // defaults to false when unset
	Sp       span.Span
}

func (f *Function) Span() span.Span { return f.Sp }
func (*Function) itemNode()         {}

// Module is a module declaration: a (possibly dotted, e.g. "A::B") type
// prefix and the items nested within it.
type Module struct {
	Prefix *TypeRef
	Items  []Item
	Sp     span.Span
}

func (m *Module) Span() span.Span { return m.Sp }
func (*Module) itemNode()         {}

func (m *Module) Kind() *TypeRef {
	return m.Prefix
}
