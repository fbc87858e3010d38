// Package driver runs the fixpoint loop that turns scope-walk annotations
// into a finished intermediate module: push every annotation grouped by
// path, detect redefinitions, then repeatedly pluck an unresolved path and
// process it until none remain.
package driver

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
	"github.com/warplang/warpc/internal/path"
	"github.com/warplang/warpc/internal/resolver"
	"github.com/warplang/warpc/internal/scope"
)

// Driver owns the annotations table, the intern tables, and the
// intermediate module under construction across one fixpoint run.
type Driver struct {
	annotated map[string][]scope.Annotation
	paths     map[string]path.Path // key -> the Path it was keyed under, for logging

	ctx *resolver.Context

	// Trace, when non-nil, receives one line per processed declaration,
	// with the running count of processed types and functions formatted
	// via go-humanize.
	Trace *log.Logger
}

// New returns a driver writing resolved types/functions into store and
// diagnostics into engine.
func New(store *ir.Store, engine *diag.Engine) *Driver {
	return &Driver{
		annotated: make(map[string][]scope.Annotation),
		paths:     make(map[string]path.Path),
		ctx:       resolver.NewContext(store, engine),
	}
}

// Push scope-walks root and groups its annotations by path.
func (d *Driver) Push(root *ast.Root) {
	for _, ann := range scope.Build(root) {
		p := ann.Path()
		key := p.Key()
		d.paths[key] = p
		d.annotated[key] = append(d.annotated[key], ann)
	}
}

// Reduce runs the fixpoint loop to completion: verify_singular_items then
// pluck/process until no unresolved path remains.
func (d *Driver) Reduce() {
	d.verifySingular()
	for {
		key, ok := d.pluck()
		if !ok {
			break
		}
		d.process(key)
	}
}

// Build returns the finished, persistable module.
func (d *Driver) Build() ir.Module {
	return d.ctx.Store.Build()
}

// verifySingular emits a redefinition diagnostic for every path with more
// than one annotation, at the last duplicate's span, with Note diagnostics
// at each prior site; only the last annotation for that path survives into
// the pluck/process loop.
func (d *Driver) verifySingular() {
	for key, anns := range d.annotated {
		if len(anns) < 2 {
			continue
		}
		last := anns[len(anns)-1]
		name := diag.TypeRedefinition
		if last.IsFunc() {
			name = diag.FuncRedefinition
		}
		d.ctx.Diag.Emit(name, last.Item.Span(), fmt.Sprintf("%s redefined", d.paths[key].String()))
		for _, prior := range anns[:len(anns)-1] {
			d.ctx.Diag.Emit(diag.Note, prior.Item.Span(), "previous definition here")
		}
		d.annotated[key] = anns[len(anns)-1:]
	}
}

// pluck finds any path not yet present in either the types or functions
// table whose surviving annotation is a type or function, and returns it.
// Map iteration order is nondeterministic, which is fine: the driver is a
// pure fixpoint — any pluck order reaches the same final tables, since
// resolution of one declaration never depends on processing order (stub
// ids make forward references resolvable immediately).
func (d *Driver) pluck() (string, bool) {
	for key, anns := range d.annotated {
		if len(anns) == 0 {
			continue
		}
		ann := anns[0]
		if !ann.IsType() && !ann.IsFunc() {
			continue
		}
		if ann.IsType() {
			if _, done := d.ctx.Types[key]; done {
				continue
			}
		} else {
			if _, done := d.ctx.Funcs[key]; done {
				continue
			}
		}
		return key, true
	}
	return "", false
}

func (d *Driver) process(key string) {
	ann := d.annotated[key][0]
	p := d.paths[key]
	generics := ann.GenericNames()

	switch item := ann.Item.(type) {
	case *ast.Struct:
		id := d.ctx.Store.StubType(p.Base, len(generics))
		d.ctx.Types[key] = id
		fields := resolver.BuildStruct(d.ctx, ann.Scope, generics, item)
		d.ctx.Store.UpdateType(id, func(t ir.Type) ir.Type {
			t.Name = p.Base
			t.Generics = generics
			t.Definition = ir.TypeDefinition{Kind: ir.DefStruct, Fields: fields}
			return t
		})
		d.logf(p, "struct")

	case *ast.Enum:
		id := d.ctx.Store.StubType(p.Base, len(generics))
		d.ctx.Types[key] = id
		built := resolver.BuildEnum(d.ctx, ann.Scope, generics, item)
		d.ctx.Store.UpdateType(id, func(t ir.Type) ir.Type {
			t.Name = p.Base
			t.Generics = generics
			t.Definition = ir.TypeDefinition{Kind: ir.DefEnum, Enum: built}
			return t
		})
		d.logf(p, "enum")

	case *ast.Function:
		params, ret := resolver.BuildFunctionSignature(d.ctx, ann.Scope, generics, item)
		id := d.ctx.Store.FuncPush(ir.Function{
			Name:       p.Base,
			FName:      *p.FName,
			Generics:   generics,
			Parameters: params,
			RetVal:     ret,
		})
		d.ctx.Funcs[key] = id
		d.logf(p, "func")
	}
}

func (d *Driver) logf(p path.Path, kind string) {
	if d.Trace == nil {
		return
	}
	d.Trace.Printf("resolved %s %s (%s processed)", kind, p.String(),
		humanize.Comma(int64(len(d.ctx.Types)+len(d.ctx.Funcs))))
}
