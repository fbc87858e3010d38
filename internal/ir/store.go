package ir

import "strconv"

// Store is the intermediate module under construction: a monotone table of
// types and functions, built incrementally by the driver as it resolves one
// declaration at a time. Primitive and pointer/size types are cached so that
// repeated requests for, say, `i32` or a raw pointer always yield the same
// TypeId rather than duplicate entries.
type Store struct {
	name         string
	version      Version
	requirements []Requirement

	types []Type
	funcs []Function

	primitives map[int]TypeId
	pointer    *TypeId
	size       *TypeId
}

// NewStore creates an empty Store for the named module.
func NewStore(name string, version Version) *Store {
	return &Store{
		name:       name,
		version:    version,
		primitives: make(map[int]TypeId),
	}
}

// AddRequirement records a dependency of the module under construction.
func (s *Store) AddRequirement(name string, version Version) {
	s.requirements = append(s.requirements, Requirement{Name: name, Version: version})
}

// TypePush appends t to the type table and returns its newly assigned id.
func (s *Store) TypePush(t Type) TypeId {
	id := TypeId(len(s.types))
	s.types = append(s.types, t)
	return id
}

// FuncPush appends f to the function table and returns its newly assigned id.
func (s *Store) FuncPush(f Function) FunctionId {
	id := FunctionId(len(s.funcs))
	s.funcs = append(s.funcs, f)
	return id
}

// Type returns the type currently stored under id.
func (s *Store) Type(id TypeId) Type {
	return s.types[int(id)]
}

// UpdateType replaces the type stored under id, applying fn to its current
// value. id must already exist; it is a programming error to call this on an
// id that has not been pushed (the driver only calls it on stub ids it
// itself created via StubType).
func (s *Store) UpdateType(id TypeId, fn func(Type) Type) {
	s.types[int(id)] = fn(s.types[int(id)])
}

// VoidType returns the id of the zero-bit-width primitive, creating it on
// first use.
func (s *Store) VoidType() TypeId {
	return s.PrimitiveType(0)
}

// PrimitiveType returns the id of the primitive type with the given bit
// width, creating and caching it on first request so repeated calls with the
// same width are idempotent.
func (s *Store) PrimitiveType(bitWidth int) TypeId {
	if id, ok := s.primitives[bitWidth]; ok {
		return id
	}
	id := s.TypePush(Type{
		Name:       []string{primitiveName(bitWidth)},
		Definition: TypeDefinition{Kind: DefPrimitive, BitWidth: bitWidth},
	})
	s.primitives[bitWidth] = id
	return id
}

// PointerType returns the singleton id of the raw pointer type, creating it
// on first use.
func (s *Store) PointerType() TypeId {
	if s.pointer != nil {
		return *s.pointer
	}
	id := s.TypePush(Type{
		Name:       []string{"ptr"},
		Definition: TypeDefinition{Kind: DefPrimitivePtr},
	})
	s.pointer = &id
	return id
}

// SizeType returns the singleton id of the pointer-sized integer type,
// creating it on first use.
func (s *Store) SizeType() TypeId {
	if s.size != nil {
		return *s.size
	}
	id := s.TypePush(Type{
		Name:       []string{"size"},
		Definition: TypeDefinition{Kind: DefPrimitiveSize},
	})
	s.size = &id
	return id
}

// StubType pushes a placeholder entry for a not-yet-resolved type so that
// other declarations can reference its id before its own definition is
// known (breaks cyclic references). UpdateType later replaces the stub.
func (s *Store) StubType(name []string, generics int) TypeId {
	return s.TypePush(Type{
		Name: name,
		Definition: TypeDefinition{
			Kind:        DefStub,
			StubName:    name,
			StubGeneric: generics,
		},
	})
}

// StructType pushes a fully-built struct definition.
func (s *Store) StructType(name, generics []string, fields []Field) TypeId {
	return s.TypePush(Type{
		Name:       name,
		Generics:   generics,
		Definition: TypeDefinition{Kind: DefStruct, Fields: fields},
	})
}

// EnumType pushes a fully-built enum definition.
func (s *Store) EnumType(name, generics []string, enum Enum) TypeId {
	return s.TypePush(Type{
		Name:       name,
		Generics:   generics,
		Definition: TypeDefinition{Kind: DefEnum, Enum: enum},
	})
}

// Build assembles the final, ordered Module from the store's contents.
func (s *Store) Build() Module {
	types := make(map[TypeId]Type, len(s.types))
	for i, t := range s.types {
		types[TypeId(i)] = t
	}
	funcs := make(map[FunctionId]Function, len(s.funcs))
	for i, f := range s.funcs {
		funcs[FunctionId(i)] = f
	}
	return Module{
		Name:         s.name,
		Version:      s.version,
		Requirements: s.requirements,
		Types:        types,
		Funcs:        funcs,
	}
}

func primitiveName(bitWidth int) string {
	if bitWidth == 0 {
		return "void"
	}
	return "i" + strconv.Itoa(bitWidth)
}
