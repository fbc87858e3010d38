package ir

import "fmt"

// ReferenceKind tags the shape of a TypeReference: a concrete type, a
// generic parameter, or a generic type applied to arguments.
type ReferenceKind int

const (
	// Absolute references a concrete, non-generic type by id.
	Absolute ReferenceKind = iota
	// Generic references one of the enclosing declaration's own generic
	// parameters, by its positional index.
	Generic
	// Mix references a generic type definition applied to argument
	// references, e.g. `Option<T>` or `Map<K, List<V>>`.
	Mix
)

// TypeReference is the tagged union stored wherever a field, parameter, or
// return value names a type. Exactly one of the three shapes is populated,
// selected by Kind.
type TypeReference struct {
	Kind ReferenceKind

	// Absolute
	Type TypeId

	// Generic
	Index int

	// Mix
	Base TypeId
	Args []TypeReference
}

// AbsoluteRef builds a non-generic type reference.
func AbsoluteRef(id TypeId) TypeReference {
	return TypeReference{Kind: Absolute, Type: id}
}

// GenericRef builds a reference to the index'th generic parameter in scope.
func GenericRef(index int) TypeReference {
	return TypeReference{Kind: Generic, Index: index}
}

// MixRef builds a generic-instantiation reference.
func MixRef(base TypeId, args []TypeReference) TypeReference {
	return TypeReference{Kind: Mix, Base: base, Args: args}
}

type typeReferenceYAML struct {
	Tag   string          `yaml:"tag"`
	Type  *TypeId         `yaml:"type,omitempty"`
	Index *int            `yaml:"index,omitempty"`
	Base  *TypeId         `yaml:"base,omitempty"`
	Args  []TypeReference `yaml:"args,omitempty"`
}

// MarshalYAML renders the reference under its "abs"|"gen"|"mix" tag.
func (r TypeReference) MarshalYAML() (any, error) {
	switch r.Kind {
	case Absolute:
		t := r.Type
		return typeReferenceYAML{Tag: "abs", Type: &t}, nil
	case Generic:
		i := r.Index
		return typeReferenceYAML{Tag: "gen", Index: &i}, nil
	case Mix:
		b := r.Base
		return typeReferenceYAML{Tag: "mix", Base: &b, Args: r.Args}, nil
	default:
		return nil, fmt.Errorf("ir: unknown TypeReference kind %d", r.Kind)
	}
}

// UnmarshalYAML reconstructs a TypeReference from its tagged form.
func (r *TypeReference) UnmarshalYAML(unmarshal func(any) error) error {
	var raw typeReferenceYAML
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw.Tag {
	case "abs":
		if raw.Type == nil {
			return fmt.Errorf("ir: abs type reference missing type")
		}
		*r = AbsoluteRef(*raw.Type)
	case "gen":
		if raw.Index == nil {
			return fmt.Errorf("ir: gen type reference missing index")
		}
		*r = GenericRef(*raw.Index)
	case "mix":
		if raw.Base == nil {
			return fmt.Errorf("ir: mix type reference missing base")
		}
		*r = MixRef(*raw.Base, raw.Args)
	default:
		return fmt.Errorf("ir: unknown type reference tag %q", raw.Tag)
	}
	return nil
}

// DefinitionKind tags the shape of a TypeDefinition.
type DefinitionKind int

const (
	DefStruct DefinitionKind = iota
	DefEnum
	DefAlias
	DefPrimitive
	DefPrimitiveSize
	DefPrimitivePtr
	DefStub
)

func (k DefinitionKind) yamlTag() string {
	switch k {
	case DefStruct:
		return "struct"
	case DefEnum:
		return "enum"
	case DefAlias:
		return "alias"
	case DefPrimitive:
		return "primitive"
	case DefPrimitiveSize:
		return "primitive-size"
	case DefPrimitivePtr:
		return "primitive-ptr"
	case DefStub:
		return "stub"
	default:
		return "stub"
	}
}

func definitionKindFromTag(tag string) (DefinitionKind, bool) {
	switch tag {
	case "struct":
		return DefStruct, true
	case "enum":
		return DefEnum, true
	case "alias":
		return DefAlias, true
	case "primitive":
		return DefPrimitive, true
	case "primitive-size":
		return DefPrimitiveSize, true
	case "primitive-ptr":
		return DefPrimitivePtr, true
	case "stub":
		return DefStub, true
	default:
		return 0, false
	}
}

// Field is one named, typed member of a struct definition.
type Field struct {
	Name string        `yaml:"name"`
	Type TypeReference `yaml:"type"`
}

// EnumKind tags the whole-enum shape: the persisted form stores one
// discriminator for the entire enum, not per variant.
type EnumKind int

const (
	EnumSimple EnumKind = iota
	EnumValue
	EnumUnit
)

func (k EnumKind) yamlTag() string {
	switch k {
	case EnumValue:
		return "value"
	case EnumUnit:
		return "unit"
	default:
		return "simple"
	}
}

func enumKindFromTag(tag string) (EnumKind, bool) {
	switch tag {
	case "simple":
		return EnumSimple, true
	case "value":
		return EnumValue, true
	case "unit":
		return EnumUnit, true
	default:
		return 0, false
	}
}

// ValueVariant is one case of a Value-shaped enum: a name and its numeric
// value (auto-numbered from the previous variant unless an explicit literal
// overrode the counter).
type ValueVariant struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// UnitVariant is one case of a Unit-shaped enum: a name and its tuple
// payload (empty for a variant that was bare or Value-shaped before the
// whole enum got promoted to Unit by a sibling variant).
type UnitVariant struct {
	Name  string          `yaml:"name"`
	Types []TypeReference `yaml:"types,omitempty"`
}

// Enum is the fully-built body of an enum type, tagged by its final,
// whole-enum shape: Simple (bare names, ordinal by position), Value
// (explicit/auto-numbered integers), or Unit (tuple payloads) — promoted
// per the rule that any Unit-shaped variant promotes the entire enum to
// Unit, and any explicitly-valued variant (with no Unit present) promotes
// it to Value.
type Enum struct {
	Kind    EnumKind
	Simple  []string
	Values  []ValueVariant
	Units   []UnitVariant
}

type enumYAML struct {
	Tag    string         `yaml:"tag"`
	Simple []string       `yaml:"names,omitempty"`
	Values []ValueVariant `yaml:"values,omitempty"`
	Units  []UnitVariant  `yaml:"units,omitempty"`
}

// MarshalYAML renders the enum under its kebab-case tag.
func (e Enum) MarshalYAML() (any, error) {
	return enumYAML{Tag: e.Kind.yamlTag(), Simple: e.Simple, Values: e.Values, Units: e.Units}, nil
}

// UnmarshalYAML reconstructs an Enum from its tagged form.
func (e *Enum) UnmarshalYAML(unmarshal func(any) error) error {
	var raw enumYAML
	if err := unmarshal(&raw); err != nil {
		return err
	}
	kind, ok := enumKindFromTag(raw.Tag)
	if !ok {
		return fmt.Errorf("ir: unknown enum tag %q", raw.Tag)
	}
	*e = Enum{Kind: kind, Simple: raw.Simple, Values: raw.Values, Units: raw.Units}
	return nil
}

// TypeDefinition is the tagged body of a Type: what the name actually
// resolves to, once fully built.
type TypeDefinition struct {
	Kind DefinitionKind

	Fields      []Field       // struct
	Enum        Enum          // enum
	Alias       TypeReference // alias
	BitWidth    int           // primitive
	StubName    []string      // stub
	StubGeneric int           // stub: generic arity
}

type typeDefinitionYAML struct {
	Tag      string        `yaml:"tag"`
	Fields   []Field       `yaml:"fields,omitempty"`
	Enum     *Enum         `yaml:"enum,omitempty"`
	Alias    TypeReference `yaml:"alias,omitempty"`
	BitWidth *int          `yaml:"bit-width,omitempty"`
	Stub     []string      `yaml:"stub,omitempty"`
	Generics *int          `yaml:"generics,omitempty"`
}

// MarshalYAML renders the definition under its kebab-case tag.
func (d TypeDefinition) MarshalYAML() (any, error) {
	out := typeDefinitionYAML{Tag: d.Kind.yamlTag()}
	switch d.Kind {
	case DefStruct:
		out.Fields = d.Fields
	case DefEnum:
		e := d.Enum
		out.Enum = &e
	case DefAlias:
		out.Alias = d.Alias
	case DefPrimitive, DefPrimitiveSize, DefPrimitivePtr:
		bw := d.BitWidth
		out.BitWidth = &bw
	case DefStub:
		out.Stub = d.StubName
		g := d.StubGeneric
		out.Generics = &g
	}
	return out, nil
}

// UnmarshalYAML reconstructs a TypeDefinition from its tagged form.
func (d *TypeDefinition) UnmarshalYAML(unmarshal func(any) error) error {
	var raw typeDefinitionYAML
	if err := unmarshal(&raw); err != nil {
		return err
	}
	kind, ok := definitionKindFromTag(raw.Tag)
	if !ok {
		return fmt.Errorf("ir: unknown type definition tag %q", raw.Tag)
	}
	*d = TypeDefinition{Kind: kind}
	switch kind {
	case DefStruct:
		d.Fields = raw.Fields
	case DefEnum:
		if raw.Enum != nil {
			d.Enum = *raw.Enum
		}
	case DefAlias:
		d.Alias = raw.Alias
	case DefPrimitive, DefPrimitiveSize, DefPrimitivePtr:
		if raw.BitWidth != nil {
			d.BitWidth = *raw.BitWidth
		}
	case DefStub:
		d.StubName = raw.Stub
		if raw.Generics != nil {
			d.StubGeneric = *raw.Generics
		}
	}
	return nil
}

// Type is one entry in a Module's type table: a name, its generic parameter
// names, and its (possibly still-stub) definition.
type Type struct {
	Name       []string       `yaml:"name"`
	Generics   []string       `yaml:"generics,omitempty"`
	Definition TypeDefinition `yaml:"definition"`
}

// Function is one entry in a Module's function table.
type Function struct {
	Name       []string        `yaml:"name"`
	FName      string          `yaml:"fname"`
	Generics   []string        `yaml:"generics,omitempty"`
	Parameters []TypeReference `yaml:"parameters"`
	RetVal     *TypeReference  `yaml:"ret-val,omitempty"`
}

// Requirement names a dependency of a Module by name and minimum version.
type Requirement struct {
	Name    string  `yaml:"name"`
	Version Version `yaml:"version"`
}

// Module is the fully-built, persistable record produced once a driver run
// reaches fixpoint: every struct, enum, and function the source declared,
// with all type references resolved to concrete ids.
type Module struct {
	Name         string
	Version      Version
	Requirements []Requirement
	Types        map[TypeId]Type
	Funcs        map[FunctionId]Function
}

type moduleYAML struct {
	Name         string        `yaml:"name"`
	Version      Version       `yaml:"version"`
	Requirements []Requirement `yaml:"requirements,omitempty"`
	Types        []Type        `yaml:"types"`
	Funcs        []Function    `yaml:"funcs"`
}

// MarshalYAML renders Types/Funcs as dense, id-ordered lists — a type's or
// function's id is its position in the list, matching the monotone
// TypeId/FunctionId invariant.
func (m Module) MarshalYAML() (any, error) {
	types := make([]Type, len(m.Types))
	for id, t := range m.Types {
		types[int(id)] = t
	}
	funcs := make([]Function, len(m.Funcs))
	for id, f := range m.Funcs {
		funcs[int(id)] = f
	}
	return moduleYAML{
		Name:         m.Name,
		Version:      m.Version,
		Requirements: m.Requirements,
		Types:        types,
		Funcs:        funcs,
	}, nil
}

// UnmarshalYAML reconstructs a Module, re-deriving each id from its position
// in the persisted lists.
func (m *Module) UnmarshalYAML(unmarshal func(any) error) error {
	var raw moduleYAML
	if err := unmarshal(&raw); err != nil {
		return err
	}
	types := make(map[TypeId]Type, len(raw.Types))
	for i, t := range raw.Types {
		types[TypeId(i)] = t
	}
	funcs := make(map[FunctionId]Function, len(raw.Funcs))
	for i, f := range raw.Funcs {
		funcs[FunctionId(i)] = f
	}
	*m = Module{
		Name:         raw.Name,
		Version:      raw.Version,
		Requirements: raw.Requirements,
		Types:        types,
		Funcs:        funcs,
	}
	return nil
}
