package ir

import "testing"

func TestValueImmediates(t *testing.T) {
	v := Imm32(0x1234)
	if !v.IsImmediate() {
		t.Error("Imm32 not reported immediate")
	}
	if v.U32() != 0x1234 {
		t.Errorf("U32 = %#x, want 0x1234", v.U32())
	}
	if v.U64() != 0x1234 {
		t.Errorf("U64 = %#x, want 0x1234", v.U64())
	}

	if got := Imm32Signed(-1).U32(); got != 0xFFFFFFFF {
		t.Errorf("Imm32Signed(-1).U32 = %#x, want 0xFFFFFFFF", got)
	}

	f := ImmF32(1.5)
	if f.F32() != 1.5 {
		t.Errorf("F32 = %g, want 1.5", f.F32())
	}

	r := RegValue(ScalarReg(7))
	if !r.IsImmediate() {
		t.Error("register operand not reported immediate")
	}
	if r.Reg() != 7 {
		t.Errorf("Reg = %v, want s7", r.Reg())
	}
}

func TestValueInstReference(t *testing.T) {
	v := InstValue(3)
	if v.IsImmediate() {
		t.Error("instruction reference reported immediate")
	}
	h, ok := v.TryInst()
	if !ok || h != 3 {
		t.Errorf("TryInst = (%d, %v), want (3, true)", h, ok)
	}
	if _, ok := Imm32(0).TryInst(); ok {
		t.Error("TryInst succeeded on an immediate")
	}
}

func TestProgramAppend(t *testing.T) {
	p := NewProgram()
	b := p.NewBlock()

	h0 := p.Append(b, OpGetUserData, RegValue(0))
	h1 := p.Append(b, OpIAdd32, InstValue(h0), Imm32(1))

	if b.Len() != 2 {
		t.Fatalf("block length = %d, want 2", b.Len())
	}
	if b.At(0) != h0 || b.At(1) != h1 {
		t.Error("block order does not match append order")
	}
	if p.Inst(h1).Arg(0).Inst() != h0 {
		t.Error("operand does not reference producing instruction")
	}
}

func TestInstMutateInPlace(t *testing.T) {
	p := NewProgram()
	b := p.NewBlock()
	h := p.Append(b, OpIAdd32, Imm32(1), Imm32(2))

	inst := p.Inst(h)
	inst.SetArg(0, Imm32(9))
	// The handle must observe the mutation; identity is position.
	if got := p.Inst(h).Arg(0).U32(); got != 9 {
		t.Errorf("Arg(0) after SetArg = %d, want 9", got)
	}

	inst.SetFlags(0x55)
	if p.Inst(h).Flags() != 0x55 {
		t.Error("flags mutation not visible through handle")
	}
}

func TestEmitterInsertsBeforePosition(t *testing.T) {
	p := NewProgram()
	b := p.NewBlock()
	first := p.Append(b, OpGetUserData, RegValue(0))
	target := p.Append(b, OpLoadBufferF32, InstValue(first), Imm32(0))

	em := NewEmitter(p, b, 1)
	sum := em.IAdd(Imm32(1), Imm32(2))
	shifted := em.ShiftRightLogical(sum, Imm32(2))

	if em.Inserted() != 2 {
		t.Fatalf("Inserted = %d, want 2", em.Inserted())
	}
	if b.Len() != 4 {
		t.Fatalf("block length = %d, want 4", b.Len())
	}
	// Expected order: first, IAdd, Shr, target.
	if b.At(0) != first {
		t.Error("leading instruction moved")
	}
	if p.Inst(b.At(1)).Op != OpIAdd32 || p.Inst(b.At(2)).Op != OpShiftRightLogical32 {
		t.Error("emitted instructions out of order")
	}
	if b.At(3) != target {
		t.Error("target no longer last")
	}
	if p.Inst(shifted.Inst()).Arg(0).Inst() != sum.Inst() {
		t.Error("emitted chain operands broken")
	}
}

func TestEmitterComposites(t *testing.T) {
	p := NewProgram()
	b := p.NewBlock()
	p.Append(b, OpImageSampleImplicitLod, Imm32(0), Imm32(0))

	em := NewEmitter(p, b, 0)
	v := em.CompositeConstructF32x3(ImmF32(1), ImmF32(2), ImmF32(3))
	inst := p.Inst(v.Inst())
	if inst.Op != OpCompositeConstructF32x3 || inst.NumArgs() != 3 {
		t.Errorf("got %s with %d args", inst.Op, inst.NumArgs())
	}

	ex := em.CompositeExtract(v, 1)
	exInst := p.Inst(ex.Inst())
	if exInst.Op != OpCompositeExtractU32 || exInst.Arg(1).U32() != 1 {
		t.Error("CompositeExtract lane not encoded as immediate")
	}
}

func TestBufferInstInfoPacking(t *testing.T) {
	info := BufferInstInfo(0).
		WithInstOffset(0x123).
		WithIndexEnable(true).
		WithOffsetEnable(true).
		WithTyped(true).
		WithFormats(14, 7)

	if info.InstOffset() != 0x123 {
		t.Errorf("InstOffset = %#x, want 0x123", info.InstOffset())
	}
	if !info.IndexEnable() || !info.OffsetEnable() || !info.IsTyped() {
		t.Error("enable bits lost in packing")
	}
	if uint32(info.DataFmt()) != 14 || uint32(info.NumberFmt()) != 7 {
		t.Errorf("formats = %v/%v, want 14/7", info.DataFmt(), info.NumberFmt())
	}

	cleared := info.WithIndexEnable(false)
	if cleared.IndexEnable() {
		t.Error("WithIndexEnable(false) did not clear the bit")
	}
	if cleared.InstOffset() != 0x123 {
		t.Error("clearing one bit disturbed the offset field")
	}
}

func TestTextureInstInfoPacking(t *testing.T) {
	info := TextureInstInfo(0).WithDepth(true).WithOffset(true)
	if !info.IsDepth() || !info.HasOffset() {
		t.Error("set bits not observed")
	}
	if info.HasLodClamp() || info.ExplicitLod() {
		t.Error("unset bits observed")
	}

	info = info.WithLodClamp(true).WithExplicitLod(true).WithDepth(false)
	if info.IsDepth() {
		t.Error("WithDepth(false) did not clear the bit")
	}
	if !info.HasLodClamp() || !info.ExplicitLod() {
		t.Error("later bits lost")
	}
}

func TestOpcodeNames(t *testing.T) {
	cases := map[Opcode]string{
		OpPhi:                  "Phi",
		OpGetUserData:          "GetUserData",
		OpReadConstBuffer:      "ReadConstBuffer",
		OpImageQueryDimensions: "ImageQueryDimensions",
		Opcode(60000):          "unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Opcode(%d).String() = %q, want %q", uint16(op), got, want)
		}
	}
}
