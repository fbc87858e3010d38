// Package ast defines the syntax tree: variants for items, types,
// statements, and expressions, plus the generic delimited-list "roll" shape
// used throughout (realized via stream.Rolling rather than a dedicated
// container type, since Go generics make a standalone Roll[T] unnecessary —
// every caller already wants a []T).
package ast

import "github.com/warplang/warpc/internal/span"

// Node is the minimal interface every syntax-tree node satisfies.
type Node interface {
	Span() span.Span
}

// Item is the tagged union of top-level/nested declarations: Function,
// Struct, Enum, Module, Use.
type Item interface {
	Node
	itemNode()
}

// Root is the parsed syntax tree for one compilation unit.
type Root struct {
	Items []Item
}

func (r *Root) Span() span.Span {
	out := span.Identity()
	for _, it := range r.Items {
		out = span.Merge(out, it.Span())
	}
	return out
}
