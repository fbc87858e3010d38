package resolver

import (
	"fmt"

	"github.com/warplang/warpc/internal/ast"
	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
	"github.com/warplang/warpc/internal/scope"
	"github.com/warplang/warpc/internal/span"
)

// BuildStruct resolves every field of st and returns the finished field
// list. A duplicate field name emits TypeRedefinition at the later site and
// a Note at the earlier one; the later definition wins, matching the
// redefinition rule used for type and function paths.
func BuildStruct(ctx *Context, sc scope.Scope, generics []string, st *ast.Struct) []ir.Field {
	var fields []ir.Field
	index := make(map[string]int)     // field name -> index into fields
	spans := make(map[string]span.Span) // field name -> span of its definition

	for _, f := range st.Fields {
		ref := ResolveTypeRef(ctx, sc, generics, f.Type)
		if priorIdx, ok := index[f.Name.Value]; ok {
			ctx.Diag.Emit(diag.TypeRedefinition, f.Name.Span,
				fmt.Sprintf("field %q redefined", f.Name.Value))
			ctx.Diag.Emit(diag.Note, spans[f.Name.Value], "previous definition here")
			fields[priorIdx] = ir.Field{Name: f.Name.Value, Type: ref}
			spans[f.Name.Value] = f.Name.Span
			continue
		}
		index[f.Name.Value] = len(fields)
		spans[f.Name.Value] = f.Name.Span
		fields = append(fields, ir.Field{Name: f.Name.Value, Type: ref})
	}
	return fields
}

// BuildEnum resolves every variant of en and returns the finished,
// whole-enum-tagged definition, applying the Unit/Value promotion rule.
func BuildEnum(ctx *Context, sc scope.Scope, generics []string, en *ast.Enum) ir.Enum {
	hasUnit := false
	hasExplicitValue := false
	for _, v := range en.Variants {
		switch v.Kind {
		case ast.VariantUnit:
			hasUnit = true
		case ast.VariantValue:
			hasExplicitValue = true
		}
	}

	switch {
	case hasUnit:
		return buildUnitEnum(ctx, sc, generics, en)
	case hasExplicitValue:
		return buildValueEnum(en)
	default:
		names := make([]string, len(en.Variants))
		for i, v := range en.Variants {
			names[i] = v.Name.Value
		}
		return ir.Enum{Kind: ir.EnumSimple, Simple: names}
	}
}

func buildValueEnum(en *ast.Enum) ir.Enum {
	var counter int64
	variants := make([]ir.ValueVariant, len(en.Variants))
	for i, v := range en.Variants {
		if v.Kind == ast.VariantValue && v.Value != nil {
			counter = *v.Value
		}
		variants[i] = ir.ValueVariant{Name: v.Name.Value, Value: counter}
		counter++
	}
	return ir.Enum{Kind: ir.EnumValue, Values: variants}
}

func buildUnitEnum(ctx *Context, sc scope.Scope, generics []string, en *ast.Enum) ir.Enum {
	variants := make([]ir.UnitVariant, len(en.Variants))
	for i, v := range en.Variants {
		if v.Kind != ast.VariantUnit {
			variants[i] = ir.UnitVariant{Name: v.Name.Value}
			continue
		}
		types := make([]ir.TypeReference, len(v.Types))
		for j, t := range v.Types {
			types[j] = ResolveTypeRef(ctx, sc, generics, t)
		}
		variants[i] = ir.UnitVariant{Name: v.Name.Value, Types: types}
	}
	return ir.Enum{Kind: ir.EnumUnit, Units: variants}
}

// BuildFunctionSignature resolves a function's parameter and return types.
func BuildFunctionSignature(ctx *Context, sc scope.Scope, generics []string, fn *ast.Function) ([]ir.TypeReference, *ir.TypeReference) {
	params := make([]ir.TypeReference, 0, len(fn.Params))
	for _, p := range fn.Params {
		if p.Kind == ast.ParamThis {
			continue
		}
		params = append(params, ResolveTypeRef(ctx, sc, generics, p.Type))
	}
	if fn.RetVal == nil {
		return params, nil
	}
	ret := ResolveTypeRef(ctx, sc, generics, fn.RetVal)
	return params, &ret
}
