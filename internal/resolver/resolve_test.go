package resolver_test

import (
	"bytes"
	"testing"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
	"github.com/warplang/warpc/internal/resolver"
	"github.com/warplang/warpc/internal/scope"
	"github.com/warplang/warpc/internal/span"
	"github.com/warplang/warpc/internal/token"
)

func newContext(t *testing.T) (*resolver.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	store := ir.NewStore("demo", ir.Version{})
	engine := diag.New(span.NewSet(), &buf, diag.Warning)
	return resolver.NewContext(store, engine), &buf
}

func typeRef(names ...string) *ast.TypeRef {
	parts := make([]token.Token, len(names))
	for i, n := range names {
		parts[i] = token.Token{Kind: token.ModuleName, Value: n}
	}
	return &ast.TypeRef{Parts: parts}
}

func TestResolveEmptyRefIsVoid(t *testing.T) {
	ctx, _ := newContext(t)
	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, &ast.TypeRef{})
	if ref.Kind != ir.Absolute || ref.Type != ctx.Store.VoidType() {
		t.Fatalf("empty ref = %+v, want void", ref)
	}
}

func TestResolveGenericParameterByPosition(t *testing.T) {
	ctx, _ := newContext(t)
	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, []string{"T", "U"}, typeRef("U"))
	if ref.Kind != ir.Generic || ref.Index != 1 {
		t.Fatalf("ref = %+v, want Generic index 1", ref)
	}
}

func TestResolveStaticBuiltin(t *testing.T) {
	ctx, _ := newContext(t)
	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("i32"))
	if ref.Kind != ir.Absolute {
		t.Fatalf("ref = %+v, want Absolute", ref)
	}
	if ref.Type != ctx.Store.PrimitiveType(32) {
		t.Fatal("i32 should resolve to the 32-bit primitive")
	}
}

func TestResolveUnsignedInternsToSignedId(t *testing.T) {
	ctx, _ := newContext(t)
	signed := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("i16"))
	unsigned := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("u16"))
	if signed.Type != unsigned.Type {
		t.Fatal("i16 and u16 should intern to the same TypeId")
	}
}

func TestResolveStaticPointerPath(t *testing.T) {
	ctx, _ := newContext(t)
	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("$slip", "ptr"))
	if ref.Kind != ir.Absolute {
		t.Fatalf("ref = %+v, want Absolute", ref)
	}
	if ref.Type != ctx.Store.PointerType() {
		t.Fatal("$slip::ptr should resolve to the pointer type")
	}
}

func TestResolveAbsoluteKnownPath(t *testing.T) {
	ctx, _ := newContext(t)
	id := ctx.Store.StructType([]string{"Thing"}, nil, nil)
	ctx.Types["Thing"] = id

	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("Thing"))
	if ref.Kind != ir.Absolute || ref.Type != id {
		t.Fatalf("ref = %+v, want Absolute(%v)", ref, id)
	}
}

func TestResolveUnknownTypeEmitsDiagnosticAndRecoversToVoid(t *testing.T) {
	ctx, buf := newContext(t)
	ref := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, typeRef("Missing"))
	if ref.Type != ctx.Store.VoidType() {
		t.Fatal("unknown type should recover to void")
	}
	if buf.Len() == 0 {
		t.Fatal("expected an UnknownType diagnostic to render")
	}
}

func TestResolveEmptyPrefixWinsOverEnclosingPrefix(t *testing.T) {
	ctx, _ := newContext(t)
	outer := ctx.Store.StructType([]string{"Z"}, nil, nil)
	inner := ctx.Store.StructType([]string{"A", "Z"}, nil, nil)
	ctx.Types["Z"] = outer
	ctx.Types["A::Z"] = inner

	sc := scope.Scope{EnclosingTypes: []*ast.TypeRef{typeRef("A")}}
	ref := resolver.ResolveTypeRef(ctx, sc, nil, typeRef("Z"))
	if ref.Type != outer {
		t.Fatalf("ref.Type = %v, want the empty-prefix candidate Z (%v) to be accepted first", ref.Type, outer)
	}
}

func TestResolveAmbiguousPicksFirstCandidateAndEmits(t *testing.T) {
	ctx, buf := newContext(t)
	idA := ctx.Store.StructType([]string{"Mod1", "Z"}, nil, nil)
	idB := ctx.Store.StructType([]string{"Mod2", "Z"}, nil, nil)
	ctx.Types["Mod1::Z"] = idA
	ctx.Types["Mod2::Z"] = idB

	use1 := &ast.Use{Prefix: &ast.TypeRef{}, Trails: []ast.UseTrail{{Kind: ast.TrailStatic, Path: typeRef("Mod1", "Z")}}}
	use2 := &ast.Use{Prefix: &ast.TypeRef{}, Trails: []ast.UseTrail{{Kind: ast.TrailStatic, Path: typeRef("Mod2", "Z")}}}
	sc := scope.Scope{Uses: []*ast.Use{use1, use2}}

	ref := resolver.ResolveTypeRef(ctx, sc, nil, typeRef("Z"))
	if ref.Type != idA {
		t.Fatalf("ambiguous resolution should accept the first-declared use, got %v want %v", ref.Type, idA)
	}
	if buf.Len() == 0 {
		t.Fatal("expected an AmbiguousType diagnostic to render")
	}
}

func TestResolveGenericCompositionWrapsInMix(t *testing.T) {
	ctx, _ := newContext(t)
	optionId := ctx.Store.StructType([]string{"Option"}, []string{"T"}, nil)
	ctx.Types["Option"] = optionId

	ref := &ast.TypeRef{
		Parts:    []token.Token{{Kind: token.ModuleName, Value: "Option"}},
		Generics: []*ast.TypeRef{typeRef("i32")},
	}
	out := resolver.ResolveTypeRef(ctx, scope.Scope{}, nil, ref)
	if out.Kind != ir.Mix || out.Base != optionId {
		t.Fatalf("out = %+v, want Mix(base=%v)", out, optionId)
	}
	if len(out.Args) != 1 || out.Args[0].Type != ctx.Store.PrimitiveType(32) {
		t.Fatalf("out.Args = %+v", out.Args)
	}
}

