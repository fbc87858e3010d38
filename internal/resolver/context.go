// Package resolver implements the name/type resolution algorithm: turning a
// syntactic TypeRef, read in the scope it was written in, into a concrete
// ir.TypeReference — recovering to void and emitting diagnostics when a
// candidate is missing or ambiguous.
package resolver

import (
	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
)

// Context is the shared state every resolution call reads and writes: the
// intermediate module under construction, the diagnostic engine, and the
// path-keyed intern tables the driver maintains across the whole fixpoint
// run (so that a struct referencing itself, or two structs referencing each
// other, can both resolve once their stub ids exist).
type Context struct {
	Store *ir.Store
	Diag  *diag.Engine
	Types map[string]ir.TypeId
	Funcs map[string]ir.FunctionId
}

// NewContext returns an empty resolution context over store and engine.
func NewContext(store *ir.Store, engine *diag.Engine) *Context {
	return &Context{
		Store: store,
		Diag:  engine,
		Types: make(map[string]ir.TypeId),
		Funcs: make(map[string]ir.FunctionId),
	}
}
