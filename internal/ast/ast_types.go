package ast

import (
	"strings"

	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

// TypeRef is the syntactic type reference from an ordered
// sequence of identifier tokens plus an optional ordered sequence of generic
// arguments.
type TypeRef struct {
	Parts    []token.Token
	Generics []*TypeRef
	Sp       span.Span
}

func (t *TypeRef) Span() span.Span { return t.Sp }

// Empty reports whether this reference has no parts and no generics.
func (t *TypeRef) Empty() bool {
	return len(t.Parts) == 0 && len(t.Generics) == 0
}

// Names returns the plain segment strings, discarding token/span detail.
func (t *TypeRef) Names() []string {
	out := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		out[i] = p.Value
	}
	return out
}

func (t *TypeRef) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Names(), "::"))
	if len(t.Generics) > 0 {
		b.WriteByte('<')
		for i, g := range t.Generics {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

// JoinTypes concatenates the segments of several type references into one,
// in order — used by UseTrail.Combine to join a use prefix with the
// imported path ("A" and "B::C" yield "A::B::C").
func JoinTypes(types ...*TypeRef) *TypeRef {
	out := &TypeRef{}
	for _, t := range types {
		if t == nil {
			continue
		}
		out.Parts = append(out.Parts, t.Parts...)
		out.Sp = span.Merge(out.Sp, t.Sp)
	}
	return out
}

// UseTrailKind distinguishes the three trail forms a use declaration can
// combine.
type UseTrailKind int

const (
	TrailStatic UseTrailKind = iota
	TrailRename
	TrailStar
)

// UseTrail is one clause within a use declaration.
type UseTrail struct {
	Kind UseTrailKind
	// Path is the imported path for Static and Rename trails (the "from"
	// side of a rename).
	Path *TypeRef
	// As is the local alias a Rename trail is visible under.
	As *TypeRef
	Sp  span.Span
}

func (u UseTrail) Span() span.Span { return u.Sp }

// Applies reports whether this trail is a candidate source for resolving
// ref: Star always applies; Static applies iff its last segment equals
// ref's parts; Rename applies iff its alias equals ref's parts.
func (u UseTrail) Applies(ref *TypeRef) bool {
	switch u.Kind {
	case TrailStar:
		return true
	case TrailStatic:
		parts := u.Path.Names()
		if len(parts) == 0 {
			return false
		}
		return equalNames([]string{parts[len(parts)-1]}, ref.Names())
	case TrailRename:
		return equalNames(u.As.Names(), ref.Names())
	}
	return false
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Combine produces the absolute path formed by applying this trail to ref,
// given the use declaration's prefix. Rename combines as prefix+from (the
// renamed import rewrites back to the original symbol).
func (u UseTrail) Combine(prefix *TypeRef, ref *TypeRef) *TypeRef {
	switch u.Kind {
	case TrailStatic:
		return JoinTypes(prefix, u.Path)
	case TrailRename:
		return JoinTypes(prefix, u.Path)
	case TrailStar:
		return JoinTypes(prefix, ref)
	}
	return JoinTypes(prefix, ref)
}

// Use is a `use` declaration: a prefix plus the trails it makes visible.
type Use struct {
	Prefix *TypeRef
	Trails []UseTrail
	Sp     span.Span
}

func (u *Use) Span() span.Span { return u.Sp }
func (*Use) itemNode()         {}
