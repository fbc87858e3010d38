package resolver

import "github.com/warplang/warpc/internal/ir"

// staticType looks up names in the fixed table of built-in type spellings,
// returning the store's id for it if found. Unsigned widths intern to the
// same id as their signed counterpart: the front end does not distinguish
// signedness at the type-identity level, only at codegen (out of scope
// here). The pointer type is spelled as the two-segment path `$slip::ptr`
// rather than a bare name, since it names a compiler-internal type outside
// any user-declarable namespace.
func staticType(store *ir.Store, names []string) (ir.TypeId, bool) {
	if len(names) == 2 && names[0] == "$slip" && names[1] == "ptr" {
		return store.PointerType(), true
	}
	if len(names) != 1 {
		return 0, false
	}
	switch names[0] {
	case "void":
		return store.VoidType(), true
	case "bool":
		return store.PrimitiveType(1), true
	case "i8", "u8":
		return store.PrimitiveType(8), true
	case "i16", "u16":
		return store.PrimitiveType(16), true
	case "i32", "u32":
		return store.PrimitiveType(32), true
	case "i64", "u64":
		return store.PrimitiveType(64), true
	case "isize", "usize":
		return store.SizeType(), true
	default:
		return 0, false
	}
}
