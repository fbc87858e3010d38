package ir_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/warplang/warpc/internal/ir"
)

func TestTypeReferenceYAMLTags(t *testing.T) {
	cases := []struct {
		name string
		ref  ir.TypeReference
		tag  string
	}{
		{"abs", ir.AbsoluteRef(3), "abs"},
		{"gen", ir.GenericRef(1), "gen"},
		{"mix", ir.MixRef(2, []ir.TypeReference{ir.AbsoluteRef(0)}), "mix"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := yaml.Marshal(c.ref)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			var doc map[string]any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				t.Fatalf("Unmarshal into map error: %v", err)
			}
			if doc["tag"] != c.tag {
				t.Fatalf("tag = %v, want %q", doc["tag"], c.tag)
			}

			var out ir.TypeReference
			if err := yaml.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if out.Kind != c.ref.Kind {
				t.Fatalf("round-tripped kind = %v, want %v", out.Kind, c.ref.Kind)
			}
		})
	}
}

func TestTypeReferenceUnmarshalUnknownTag(t *testing.T) {
	var out ir.TypeReference
	err := yaml.Unmarshal([]byte("tag: bogus\n"), &out)
	if err == nil {
		t.Fatal("expected an error for an unknown tag")
	}
}

func TestEnumWholeShapeTagging(t *testing.T) {
	simple := ir.Enum{Kind: ir.EnumSimple, Simple: []string{"Red", "Green"}}
	value := ir.Enum{Kind: ir.EnumValue, Values: []ir.ValueVariant{{Name: "A", Value: 0}, {Name: "B", Value: 5}}}
	unit := ir.Enum{Kind: ir.EnumUnit, Units: []ir.UnitVariant{{Name: "Some", Types: []ir.TypeReference{ir.AbsoluteRef(1)}}, {Name: "None"}}}

	for _, e := range []ir.Enum{simple, value, unit} {
		data, err := yaml.Marshal(e)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		var out ir.Enum
		if err := yaml.Unmarshal(data, &out); err != nil {
			t.Fatalf("Unmarshal error: %v", err)
		}
		if out.Kind != e.Kind {
			t.Fatalf("round-tripped kind = %v, want %v", out.Kind, e.Kind)
		}
	}
}

func TestTypeDefinitionStructRoundTrip(t *testing.T) {
	def := ir.TypeDefinition{
		Kind: ir.DefStruct,
		Fields: []ir.Field{
			{Name: "x", Type: ir.AbsoluteRef(0)},
			{Name: "y", Type: ir.GenericRef(0)},
		},
	}
	data, err := yaml.Marshal(def)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var out ir.TypeDefinition
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if out.Kind != ir.DefStruct || len(out.Fields) != 2 {
		t.Fatalf("round trip = %+v", out)
	}
	if out.Fields[0].Name != "x" || out.Fields[1].Name != "y" {
		t.Fatalf("field order/name not preserved: %+v", out.Fields)
	}
}

func TestTypeDefinitionStubRoundTrip(t *testing.T) {
	def := ir.TypeDefinition{Kind: ir.DefStub, StubName: []string{"A", "B"}, StubGeneric: 2}
	data, err := yaml.Marshal(def)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var out ir.TypeDefinition
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if out.Kind != ir.DefStub || out.StubGeneric != 2 || len(out.StubName) != 2 {
		t.Fatalf("round trip = %+v", out)
	}
}

func TestModuleYAMLPreservesIdOrder(t *testing.T) {
	mod := ir.Module{
		Name:    "demo",
		Version: ir.Version{Major: 0, Minor: 1, Patch: 0},
		Types: map[ir.TypeId]ir.Type{
			2: {Name: []string{"Third"}, Definition: ir.TypeDefinition{Kind: ir.DefPrimitive, BitWidth: 8}},
			0: {Name: []string{"First"}, Definition: ir.TypeDefinition{Kind: ir.DefPrimitive, BitWidth: 32}},
			1: {Name: []string{"Second"}, Definition: ir.TypeDefinition{Kind: ir.DefPrimitive, BitWidth: 64}},
		},
		Funcs: map[ir.FunctionId]ir.Function{
			0: {Name: []string{"f"}, FName: "f"},
		},
	}

	data, err := yaml.Marshal(mod)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var out ir.Module
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(out.Types) != 3 {
		t.Fatalf("got %d types, want 3", len(out.Types))
	}
	if out.Types[0].Name[0] != "First" || out.Types[1].Name[0] != "Second" || out.Types[2].Name[0] != "Third" {
		t.Fatalf("ids not re-derived from list position: %+v", out.Types)
	}
}
