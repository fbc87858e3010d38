package resolver

import (
	"fmt"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
	"github.com/warplang/warpc/internal/scope"
)

// ResolveTypeRef resolves ref as read within sc, where generics is the
// ordered list of generic parameter names visible at the point of
// reference (scope.Annotation.GenericNames()). It implements, in order:
// a positional generic-parameter check, a built-in/static-type check,
// candidate path enumeration and intersection against ctx.Types (emitting
// AmbiguousType or UnknownType as needed, recovering to void), and
// recursive composition into a Mix when ref itself carries generic
// arguments.
func ResolveTypeRef(ctx *Context, sc scope.Scope, generics []string, ref *ast.TypeRef) ir.TypeReference {
	if ref.Empty() {
		return ir.AbsoluteRef(ctx.Store.VoidType())
	}

	if len(ref.Generics) == 0 {
		names := ref.Names()
		if len(names) == 1 {
			for i, g := range generics {
				if g == names[0] {
					return ir.GenericRef(i)
				}
			}
		}
		if id, ok := staticType(ctx.Store, names); ok {
			return ir.AbsoluteRef(id)
		}
	}

	base := resolveAbsolute(ctx, sc, ref)

	if len(ref.Generics) == 0 {
		return base
	}
	if base.Kind != ir.Absolute {
		return base
	}
	args := make([]ir.TypeReference, len(ref.Generics))
	for i, g := range ref.Generics {
		args[i] = ResolveTypeRef(ctx, sc, generics, g)
	}
	return ir.MixRef(base.Type, args)
}

// resolveAbsolute performs the candidate-enumeration, intersection, and
// ambiguity/missing diagnostics steps, ignoring ref's own generic argument
// list (the caller wraps the result in a Mix when needed).
func resolveAbsolute(ctx *Context, sc scope.Scope, ref *ast.TypeRef) ir.TypeReference {
	candidates := enumerateCandidates(sc, ref)

	type match struct {
		path string
		id   ir.TypeId
	}
	var matches []match
	seen := make(map[ir.TypeId]bool)
	for _, c := range candidates {
		id, ok := ctx.Types[c.path.Key()]
		if !ok {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		matches = append(matches, match{path: c.path.String(), id: id})
	}

	switch len(matches) {
	case 0:
		em := ctx.Diag.Emit(diag.UnknownType, ref.Span(), fmt.Sprintf("unknown type %q", ref.String()))
		for _, c := range candidates {
			ctx.Diag.EmitIf(em.Level, diag.TypeTrace, ref.Span(), fmt.Sprintf("tried %s", c.path.String()))
		}
		return ir.AbsoluteRef(ctx.Store.VoidType())
	case 1:
		return ir.AbsoluteRef(matches[0].id)
	default:
		em := ctx.Diag.Emit(diag.AmbiguousType, ref.Span(), fmt.Sprintf("ambiguous type %q", ref.String()))
		ctx.Diag.EmitIf(em.Level, diag.TypeTraceAccepted, ref.Span(), fmt.Sprintf("accepted %s", matches[0].path))
		for _, m := range matches[1:] {
			ctx.Diag.EmitIf(em.Level, diag.TypeTracePossible, ref.Span(), fmt.Sprintf("possible %s", m.path))
		}
		return ir.AbsoluteRef(matches[0].id)
	}
}
