package ir

import "strings"

// Type is a bitset of value types observed flowing through a resource
// access. Untyped buffer reads default to float; the set widens as
// further accesses are discovered.
type Type uint16

const (
	TypeF32 Type = 1 << iota
	TypeU32
)

// Has reports whether all bits of t2 are present in t.
func (t Type) Has(t2 Type) bool {
	return t&t2 == t2
}

// String returns a pipe-separated list of the set members.
func (t Type) String() string {
	if t == 0 {
		return "void"
	}
	var parts []string
	if t.Has(TypeF32) {
		parts = append(parts, "f32")
	}
	if t.Has(TypeU32) {
		parts = append(parts, "u32")
	}
	return strings.Join(parts, "|")
}
