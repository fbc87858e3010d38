package resolver

import (
	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/path"
	"github.com/warplang/warpc/internal/scope"
)

// candidate is one enumerated path that a type reference could name.
type candidate struct {
	path path.Path
}

// enumerateCandidates lists, in acceptance-priority order, every path ref
// could plausibly name from within sc: first every prefix of the enclosing
// types, starting with the empty prefix and growing outward-in (so a
// root-level type wins over one of the same name declared in an enclosing
// module), then every use-trail candidate that applies to ref, in
// declaration order.
func enumerateCandidates(sc scope.Scope, ref *ast.TypeRef) []candidate {
	refNames := ref.Names()

	var out []candidate
	for k := 0; k <= len(sc.EnclosingTypes); k++ {
		var base []string
		for _, t := range sc.EnclosingTypes[:k] {
			base = append(base, t.Names()...)
		}
		base = append(base, refNames...)
		out = append(out, candidate{path: path.New(base, nil)})
	}

	for _, use := range sc.Uses {
		for _, trail := range use.Trails {
			if !trail.Applies(ref) {
				continue
			}
			combined := trail.Combine(use.Prefix, ref)
			out = append(out, candidate{path: path.New(combined.Names(), nil)})
		}
	}

	return out
}
