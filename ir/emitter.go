package ir

// Emitter synthesizes replacement sub-graphs inside a block. All
// emitted instructions are inserted, in emission order, ahead of a
// fixed position (typically the instruction being rewritten) so the
// rewritten instruction can reference them as operands.
type Emitter struct {
	p        *Program
	b        *Block
	pos      int
	inserted int
}

// NewEmitter returns an emitter inserting before position pos in b.
func NewEmitter(p *Program, b *Block, pos int) *Emitter {
	return &Emitter{p: p, b: b, pos: pos}
}

// Inserted returns how many instructions the emitter has placed in the
// block. Callers iterating the block by index advance past them.
func (e *Emitter) Inserted() int {
	return e.inserted
}

func (e *Emitter) emit(op Opcode, args ...Value) Value {
	h := e.p.alloc(op, args...)
	e.b.insert(e.pos, h)
	e.pos++
	e.inserted++
	return InstValue(h)
}

// IAdd emits a 32-bit integer addition.
func (e *Emitter) IAdd(a, b Value) Value {
	return e.emit(OpIAdd32, a, b)
}

// IMul emits a 32-bit integer multiplication.
func (e *Emitter) IMul(a, b Value) Value {
	return e.emit(OpIMul32, a, b)
}

// ShiftRightLogical emits a 32-bit logical right shift.
func (e *Emitter) ShiftRightLogical(a, shift Value) Value {
	return e.emit(OpShiftRightLogical32, a, shift)
}

// FPSub emits a 32-bit float subtraction.
func (e *Emitter) FPSub(a, b Value) Value {
	return e.emit(OpFPSub32, a, b)
}

// CompositeConstructU32x2 emits a 2-element integer composite.
func (e *Emitter) CompositeConstructU32x2(x, y Value) Value {
	return e.emit(OpCompositeConstructU32x2, x, y)
}

// CompositeConstructF32x2 emits a 2-element float composite.
func (e *Emitter) CompositeConstructF32x2(x, y Value) Value {
	return e.emit(OpCompositeConstructF32x2, x, y)
}

// CompositeConstructF32x3 emits a 3-element float composite.
func (e *Emitter) CompositeConstructF32x3(x, y, z Value) Value {
	return e.emit(OpCompositeConstructF32x3, x, y, z)
}

// CompositeExtract emits a lane extraction from a composite value.
func (e *Emitter) CompositeExtract(composite Value, lane uint32) Value {
	return e.emit(OpCompositeExtractU32, composite, Imm32(lane))
}
