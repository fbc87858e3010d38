// Package scope implements the scope-and-path engine: a
// depth-first walk of the syntax tree that attaches to every declaration the
// chain of enclosing module type-prefixes and the set of `use` imports
// visible at that point.
package scope

import (
	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/path"
	"github.com/warplang/warpc/internal/token"
)

// Scope is the information carried by one Annotation: the enclosing module
// type-prefixes (outermost first) and the flattened, order-preserved list of
// `use`s visible at the point of declaration.
type Scope struct {
	EnclosingTypes []*ast.TypeRef
	Uses           []*ast.Use
}

// Annotation pairs a declaration with its Scope. Item is always a Struct,
// Enum, or Function — Use and Module are consumed by the walk itself.
type Annotation struct {
	Scope Scope
	Item  ast.Item
}

// Build walks root depth-first and returns one Annotation per struct, enum,
// and function declaration, in declaration order.
func Build(root *ast.Root) []Annotation {
	s := &stack{uses: [][]*ast.Use{nil}}
	var out []Annotation
	for _, item := range root.Items {
		out = append(out, s.visit(item)...)
	}
	return out
}

// stack holds the two parallel state stacks the walk maintains: one entry
// per enclosing module in types, and one use-frame per nesting level
// (including the baseline frame that precedes all modules) in uses.
type stack struct {
	types []*ast.TypeRef
	uses  [][]*ast.Use
}

func (s *stack) push(t *ast.TypeRef) {
	s.types = append(s.types, t)
	s.uses = append(s.uses, nil)
}

func (s *stack) pop() {
	s.uses = s.uses[:len(s.uses)-1]
	s.types = s.types[:len(s.types)-1]
}

func (s *stack) collapse() Scope {
	types := make([]*ast.TypeRef, len(s.types))
	copy(types, s.types)

	var uses []*ast.Use
	for _, frame := range s.uses {
		uses = append(uses, frame...)
	}
	return Scope{EnclosingTypes: types, Uses: uses}
}

func (s *stack) visit(item ast.Item) []Annotation {
	switch it := item.(type) {
	case *ast.Module:
		s.push(it.Prefix)
		var out []Annotation
		for _, child := range it.Items {
			out = append(out, s.visit(child)...)
		}
		s.pop()
		return out
	case *ast.Use:
		top := len(s.uses) - 1
		s.uses[top] = append(s.uses[top], it)
		return nil
	default:
		return []Annotation{{Scope: s.collapse(), Item: item}}
	}
}

// IsType reports whether the annotated item is a type declaration (Struct or
// Enum) rather than a Function.
func (a Annotation) IsType() bool {
	switch a.Item.(type) {
	case *ast.Struct, *ast.Enum:
		return true
	}
	return false
}

// IsFunc reports whether the annotated item is a Function.
func (a Annotation) IsFunc() bool {
	_, ok := a.Item.(*ast.Function)
	return ok
}

// Path derives the canonical Path for this annotation: the enclosing module
// names, plus — for a type — the item's own name appended to the base; or —
// for a function — the function name carried as the fname tail instead.
func (a Annotation) Path() path.Path {
	var base []string
	for _, t := range a.Scope.EnclosingTypes {
		base = append(base, t.Names()...)
	}

	switch it := a.Item.(type) {
	case *ast.Struct:
		base = append(base, it.Name.Value)
		return path.New(base, nil)
	case *ast.Enum:
		base = append(base, it.Name.Value)
		return path.New(base, nil)
	case *ast.Function:
		name := it.Name.Value
		return path.New(base, &name)
	default:
		return path.New(base, nil)
	}
}

// GenericNames returns the ordered list of generic parameter names visible
// at this annotation: the generics of each enclosing module type, in order,
// followed by the item's own declared generics.
func (a Annotation) GenericNames() []string {
	var names []string
	for _, t := range a.Scope.EnclosingTypes {
		for _, g := range t.Generics {
			names = append(names, g.Names()...)
		}
	}

	var own []token.Token
	switch it := a.Item.(type) {
	case *ast.Struct:
		own = it.Generics
	case *ast.Enum:
		own = it.Generics
	case *ast.Function:
		own = it.Generics
	}
	for _, g := range own {
		names = append(names, g.Value)
	}
	return names
}
