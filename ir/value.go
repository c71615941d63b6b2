package ir

import (
	"fmt"
	"math"
)

// InstHandle addresses an instruction in a Program's arena.
type InstHandle uint32

// InvalidInst is the zero-meaning handle returned on failed lookups.
const InvalidInst InstHandle = math.MaxUint32

// ScalarReg is a scalar general purpose register slot.
type ScalarReg uint32

// NumScalarRegs is the number of scalar registers. It doubles as the
// sentinel base meaning "user-data window, not memory-indirect" in
// descriptor locations.
const NumScalarRegs = 104

// String returns the assembler name of the register.
func (r ScalarReg) String() string {
	return fmt.Sprintf("s%d", uint32(r))
}

// ValueKind discriminates operand representations.
type ValueKind uint8

const (
	ValueVoid ValueKind = iota
	ValueInst
	ValueScalarReg
	ValueImmU32
	ValueImmU64
	ValueImmF32
)

// Value is an instruction operand: an immediate, a scalar register
// reference, or a reference to a producing instruction.
type Value struct {
	kind ValueKind
	inst InstHandle
	imm  uint64
}

// InstValue returns an operand referencing the given instruction.
func InstValue(h InstHandle) Value {
	return Value{kind: ValueInst, inst: h}
}

// Imm32 returns a 32-bit immediate operand.
func Imm32(v uint32) Value {
	return Value{kind: ValueImmU32, imm: uint64(v)}
}

// Imm32Signed returns a 32-bit immediate operand from a signed value.
func Imm32Signed(v int32) Value {
	return Value{kind: ValueImmU32, imm: uint64(uint32(v))}
}

// Imm64 returns a 64-bit immediate operand.
func Imm64(v uint64) Value {
	return Value{kind: ValueImmU64, imm: v}
}

// ImmF32 returns a 32-bit float immediate operand.
func ImmF32(v float32) Value {
	return Value{kind: ValueImmF32, imm: uint64(math.Float32bits(v))}
}

// RegValue returns a scalar register operand.
func RegValue(r ScalarReg) Value {
	return Value{kind: ValueScalarReg, imm: uint64(r)}
}

// Kind returns the operand's representation kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsImmediate reports whether the operand is a compile-time constant
// (including scalar register names, which are encoded immediates).
func (v Value) IsImmediate() bool {
	return v.kind != ValueInst && v.kind != ValueVoid
}

// TryInst returns the producing instruction handle, if any.
func (v Value) TryInst() (InstHandle, bool) {
	if v.kind != ValueInst {
		return InvalidInst, false
	}
	return v.inst, true
}

// Inst returns the producing instruction handle. It panics if the
// operand is not an instruction reference; that is a defect in the
// calling pass, not a recoverable condition.
func (v Value) Inst() InstHandle {
	if v.kind != ValueInst {
		panic(fmt.Sprintf("ir: operand is %v, not an instruction reference", v.kind))
	}
	return v.inst
}

// U32 returns the operand as a 32-bit immediate.
func (v Value) U32() uint32 {
	switch v.kind {
	case ValueImmU32, ValueImmU64, ValueImmF32:
		return uint32(v.imm)
	default:
		panic(fmt.Sprintf("ir: operand is %v, not an immediate", v.kind))
	}
}

// U64 returns the operand widened to a 64-bit immediate.
func (v Value) U64() uint64 {
	switch v.kind {
	case ValueImmU32, ValueImmU64:
		return v.imm
	default:
		panic(fmt.Sprintf("ir: operand is %v, not an integer immediate", v.kind))
	}
}

// F32 returns the operand as a float immediate.
func (v Value) F32() float32 {
	if v.kind != ValueImmF32 {
		panic(fmt.Sprintf("ir: operand is %v, not a float immediate", v.kind))
	}
	return math.Float32frombits(uint32(v.imm))
}

// Reg returns the operand as a scalar register.
func (v Value) Reg() ScalarReg {
	if v.kind != ValueScalarReg {
		panic(fmt.Sprintf("ir: operand is %v, not a scalar register", v.kind))
	}
	return ScalarReg(v.imm)
}

// String returns a printable form of the operand.
func (v Value) String() string {
	switch v.kind {
	case ValueVoid:
		return "void"
	case ValueInst:
		return fmt.Sprintf("%%%d", v.inst)
	case ValueScalarReg:
		return ScalarReg(v.imm).String()
	case ValueImmU32:
		return fmt.Sprintf("#%#x", uint32(v.imm))
	case ValueImmU64:
		return fmt.Sprintf("#%#x", v.imm)
	case ValueImmF32:
		return fmt.Sprintf("#%g", math.Float32frombits(uint32(v.imm)))
	default:
		return "invalid"
	}
}

// String returns the kind name, for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueVoid:
		return "void"
	case ValueInst:
		return "inst"
	case ValueScalarReg:
		return "sreg"
	case ValueImmU32:
		return "imm32"
	case ValueImmU64:
		return "imm64"
	case ValueImmF32:
		return "immf32"
	default:
		return "invalid"
	}
}
