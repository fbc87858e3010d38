// Package path implements the canonical, segmentation-independent name used
// to key every declaration the scope engine annotates.
package path

import "strings"

// Path is a flattened sequence of segments plus an optional function-name
// tail. Because it is built by flattening whatever segmentation a type
// reference happened to use (`A::B` versus `A`, `B` nested one level
// deeper), two Paths built from structurally-equivalent declarations always
// compare equal regardless of how their source segmented the name.
type Path struct {
	Base  []string
	FName *string
}

// New builds a Path from already-flat segments.
func New(base []string, fname *string) Path {
	cp := make([]string, len(base))
	copy(cp, base)
	return Path{Base: cp, FName: fname}
}

// WithFName returns a copy of p with its function-name tail replaced.
func (p Path) WithFName(fname *string) Path {
	return Path{Base: p.Base, FName: fname}
}

// IsFunc reports whether this path names a function (has an fname tail).
func (p Path) IsFunc() bool {
	return p.FName != nil
}

// Equal reports whether p and other name the same declaration: equal
// flattened base segments and equal function-name tails.
func (p Path) Equal(other Path) bool {
	if len(p.Base) != len(other.Base) {
		return false
	}
	for i := range p.Base {
		if p.Base[i] != other.Base[i] {
			return false
		}
	}
	switch {
	case p.FName == nil && other.FName == nil:
		return true
	case p.FName == nil || other.FName == nil:
		return false
	default:
		return *p.FName == *other.FName
	}
}

// String renders the path as `A::B::C` or `A::B.fname`.
func (p Path) String() string {
	joined := strings.Join(p.Base, "::")
	if p.FName != nil {
		return joined + "." + *p.FName
	}
	return joined
}

// Key returns a string usable as a map key carrying the same equality as
// Equal — two Paths that are Equal always produce the same Key.
func (p Path) Key() string {
	if p.FName != nil {
		return strings.Join(p.Base, "::") + "\x00" + *p.FName
	}
	return strings.Join(p.Base, "::")
}
