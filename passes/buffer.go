package passes

import (
	"fmt"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

// maxUboSize is the largest buffer still bindable as a plain uniform
// buffer; anything bigger must become a storage binding.
const maxUboSize = 65536

// tryInlineCbuf recognizes a buffer descriptor assembled from
// immediates in code instead of loaded from memory:
//
//	s_getpc_b64     s[32:33]
//	s_add_u32       s32, <const>, s32
//	s_addc_u32      s33, 0, s33
//	s_mov_b32       s35, <const>
//	s_movk_i32      s34, <const>
//	buffer_load_format_xyz v[8:10], v1, s[32:35], 0 ...
//
// After translation the handle is a composite whose first two lanes
// are add-with-immediate producers (the program-relative base address)
// and whose last two lanes are the immediate upper descriptor dwords.
// A structural mismatch means the descriptor is resolved through
// registers instead; only a full match registers a binding here.
func tryInlineCbuf(p *ir.Program, inst *ir.Inst, info *shader.Info, d *Descriptors) (uint32, amdgpu.Buffer, bool, error) {
	handleH, ok := inst.Arg(0).TryInst()
	if !ok {
		return 0, amdgpu.Buffer{}, false, nil
	}
	handle := p.Inst(handleH)
	if handle.NumArgs() < 4 {
		return 0, amdgpu.Buffer{}, false, nil
	}
	p0H, ok := handle.Arg(0).TryInst()
	if !ok {
		return 0, amdgpu.Buffer{}, false, nil
	}
	p0 := p.Inst(p0H)
	if p0.Op != ir.OpIAdd32 || !p0.Arg(0).IsImmediate() || !p0.Arg(1).IsImmediate() {
		return 0, amdgpu.Buffer{}, false, nil
	}
	p1H, ok := handle.Arg(1).TryInst()
	if !ok {
		return 0, amdgpu.Buffer{}, false, nil
	}
	if p.Inst(p1H).Op != ir.OpIAdd32 {
		return 0, amdgpu.Buffer{}, false, nil
	}
	if !handle.Arg(2).IsImmediate() || !handle.Arg(3).IsImmediate() {
		return 0, amdgpu.Buffer{}, false, nil
	}

	// The pattern matched. Reconstruct the descriptor.
	lo := info.PgmBase + uint64(p0.Arg(0).U32()) + uint64(p0.Arg(1).U32())
	hi := uint64(handle.Arg(2).U32()) | handle.Arg(3).U64()<<32
	cbuf := amdgpu.BufferFromQwords(lo, hi)
	binding, err := d.AddBuffer(shader.BufferResource{
		SgprBase:    shader.InlineSgprBase,
		DwordOffset: 0,
		Stride:      cbuf.EffectiveStride(),
		NumRecords:  cbuf.NumRecords(),
		UsedTypes:   bufferDataType(inst),
		InlineCbuf:  cbuf,
		IsStorage:   isBufferStore(inst) || cbuf.Size() > maxUboSize,
	})
	if err != nil {
		return 0, amdgpu.Buffer{}, false, err
	}
	return binding, cbuf, true, nil
}

// patchBufferInstruction resolves the descriptor behind a buffer
// access, registers the binding, and rewrites the instruction to carry
// the binding index and a dword-granular address. It returns the
// number of instructions inserted ahead of the patched one.
func patchBufferInstruction(p *ir.Program, b *ir.Block, pos int, info *shader.Info, d *Descriptors) (int, error) {
	inst := p.Inst(b.At(pos))
	binding, sharp, inlined, err := tryInlineCbuf(p, inst, info, d)
	if err != nil {
		return 0, err
	}
	if !inlined {
		handleH, ok := inst.Arg(0).TryInst()
		if !ok {
			return 0, fmt.Errorf("%w: buffer handle is not an instruction", ErrUnsupported)
		}
		producerH, ok := p.Inst(handleH).Arg(0).TryInst()
		if !ok {
			return 0, fmt.Errorf("%w: buffer handle has no producing instruction", ErrUnsupported)
		}
		loc, err := TrackSharp(p, producerH)
		if err != nil {
			return 0, err
		}
		if sharp, err = info.ReadBufferSharp(loc.SgprBase, loc.DwordOffset); err != nil {
			return 0, err
		}
		if binding, err = d.AddBuffer(shader.BufferResource{
			SgprBase:    loc.SgprBase,
			DwordOffset: loc.DwordOffset,
			Stride:      sharp.EffectiveStride(),
			NumRecords:  sharp.NumRecords(),
			UsedTypes:   bufferDataType(inst),
			IsStorage:   isBufferStore(inst) || sharp.Size() > maxUboSize,
		}); err != nil {
			return 0, err
		}
	}

	if sharp.SwizzleEnable() || sharp.AddTidEnable() {
		return 0, fmt.Errorf("%w: swizzled or thread-id-indexed buffer", ErrUnsupported)
	}
	bufInfo := inst.BufferInfo()
	if bufInfo.IsTyped() {
		if bufInfo.NumberFmt() != amdgpu.NumberFloat || !is32BitFormat(bufInfo.DataFmt()) {
			return 0, fmt.Errorf("%w: typed buffer access with %v/%v format",
				ErrUnsupported, bufInfo.DataFmt(), bufInfo.NumberFmt())
		}
	}

	// Replace the handle with the binding index.
	inst.SetArg(0, ir.Imm32(binding))
	if inst.Op == ir.OpReadConstBuffer || inst.Op == ir.OpReadConstBufferU32 {
		return 0, nil
	}

	// Calculate the dword-granular buffer address.
	em := ir.NewEmitter(p, b, pos)
	dwordStride := sharp.StrideElements(4)
	address := ir.Imm32(bufInfo.InstOffset() / 4)
	switch {
	case bufInfo.IndexEnable() && bufInfo.OffsetEnable():
		index := em.CompositeExtract(inst.Arg(1), 0)
		offset := em.CompositeExtract(inst.Arg(1), 1)
		address = em.IAdd(em.IMul(index, ir.Imm32(dwordStride)), address)
		address = em.IAdd(address, em.ShiftRightLogical(offset, ir.Imm32(2)))
	case bufInfo.IndexEnable():
		address = em.IAdd(em.IMul(inst.Arg(1), ir.Imm32(dwordStride)), address)
	case bufInfo.OffsetEnable():
		address = em.IAdd(address, em.ShiftRightLogical(inst.Arg(1), ir.Imm32(2)))
	}
	inst.SetArg(1, address)
	return em.Inserted(), nil
}

func is32BitFormat(dfmt amdgpu.DataFormat) bool {
	switch dfmt {
	case amdgpu.Format32, amdgpu.Format32_32, amdgpu.Format32_32_32, amdgpu.Format32_32_32_32:
		return true
	default:
		return false
	}
}
