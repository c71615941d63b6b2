package passes

import (
	"fmt"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

// anisoBfeConst is the s_bfe_u32 operand selecting the mip-count field
// of a T#, and anisoMask the s_and_b32 mask clearing the max-aniso
// ratio bits of an S# first dword. Together they identify the
// compiler idiom that disables anisotropy for textures without mips.
const (
	anisoBfeConst = 0x0008000c
	anisoMask     = 0xfffff1ff
)

// tryDisableAnisoLod0 matches the sampler-handle pattern
//
//	s_bfe_u32     s0, s7,  $0x0008000c
//	s_and_b32     s1, s12, $0xfffff1ff
//	s_cmp_eq_u32  s0, 0
//	s_cselect_b32 s0, s1, s12
//
// which masks anisotropy out of the S# when the sampled texture has no
// mip chain. On a match it returns the unmasked descriptor producer
// and true; otherwise the handle itself and false.
func tryDisableAnisoLod0(p *ir.Program, h ir.InstHandle) (ir.InstHandle, bool) {
	inst := p.Inst(h)
	if inst.Op != ir.OpSelectU32 {
		return h, false
	}

	// The select condition must be a zero check ...
	prod0H, ok := inst.Arg(0).TryInst()
	if !ok {
		return h, false
	}
	prod0 := p.Inst(prod0H)
	if prod0.Op != ir.OpIEqual32 || !prod0.Arg(1).IsImmediate() || prod0.Arg(1).U32() != 0 {
		return h, false
	}

	// ... of the extracted mip-count bit range.
	extractH, ok := prod0.Arg(0).TryInst()
	if !ok {
		return h, false
	}
	extract := p.Inst(extractH)
	if extract.Op != ir.OpBitFieldUExtract || !matchesBfeConst(p, extract.Arg(1)) {
		return h, false
	}

	// The accepted value must mask out anisotropy.
	prod1H, ok := inst.Arg(1).TryInst()
	if !ok {
		return h, false
	}
	prod1 := p.Inst(prod1H)
	if prod1.Op != ir.OpBitwiseAnd32 || !prod1.Arg(1).IsImmediate() || prod1.Arg(1).U32() != anisoMask {
		return h, false
	}

	// The rejected value is the first dword of the S# itself.
	prod2H, ok := inst.Arg(2).TryInst()
	if !ok {
		return h, false
	}
	prod2 := p.Inst(prod2H)
	if prod2.Op != ir.OpGetUserData && prod2.Op != ir.OpReadConst {
		return h, false
	}
	return prod2H, true
}

// matchesBfeConst accepts the bfe control constant either as a plain
// immediate or wrapped in a producing instruction's first operand.
func matchesBfeConst(p *ir.Program, v ir.Value) bool {
	if h, ok := v.TryInst(); ok {
		inst := p.Inst(h)
		return inst.NumArgs() > 0 && inst.Arg(0).IsImmediate() && inst.Arg(0).U32() == anisoBfeConst
	}
	return v.IsImmediate() && v.U32() == anisoBfeConst
}

// patchCubeCoord recovers cube face coordinates. The s and t values
// arrive scaled and biased by 1.5 from the v_madak_f32 cube preamble
// (the scale was already forced to 1.0 when handling v_cubema_f32), so
// subtract 1.5 to get the original face-relative coordinates.
func patchCubeCoord(em *ir.Emitter, s, t, face ir.Value) ir.Value {
	x := em.FPSub(s, ir.ImmF32(1.5))
	y := em.FPSub(t, ir.ImmF32(1.5))
	return em.CompositeConstructF32x3(x, y, face)
}

// signExt6 sign-extends a 6-bit texel offset field.
func signExt6(v uint32) ir.Value {
	return ir.Imm32Signed(int32(v<<26) >> 26)
}

// patchImageInstruction resolves the image (and, for sampling ops,
// sampler) descriptors behind an image access, registers the bindings,
// and rewrites the instruction: operand 0 becomes the packed
// image|sampler<<16 binding, the coordinate vector is reshaped for the
// image dimensionality, and offset/LOD side operands move to their
// fixed slots. Returns the number of instructions inserted ahead of
// the patched one.
func patchImageInstruction(p *ir.Program, b *ir.Block, pos int, info *shader.Info, d *Descriptors) (int, error) {
	instH := b.At(pos)
	inst := p.Inst(instH)

	// Search the operand tree for the descriptor producer: a texture+
	// sampler pair composite for sampling ops, or a direct sharp read
	// for load/store ops. Breadth-first with an explicit worklist; the
	// graph is cyclic across loop headers but the producer is always
	// reachable without revisiting the access itself.
	isProducer := func(op ir.Opcode) bool {
		return op == ir.OpCompositeConstructU32x2 || op == ir.OpReadConst || op == ir.OpGetUserData
	}
	worklist := []ir.InstHandle{instH}
	producerH := ir.InvalidInst
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curInst := p.Inst(cur)
		if isProducer(curInst.Op) {
			producerH = cur
			break
		}
		for n := 0; n < curInst.NumArgs(); n++ {
			if argH, ok := curInst.Arg(n).TryInst(); ok {
				worklist = append(worklist, argH)
			}
		}
	}
	if producerH == ir.InvalidInst {
		return 0, fmt.Errorf("%w: no image descriptor producer reachable from %s", ErrUnsupported, inst.Op)
	}

	producer := p.Inst(producerH)
	tsharpH := producerH
	ssharpH := ir.InvalidInst
	if producer.Op == ir.OpCompositeConstructU32x2 {
		var ok bool
		if tsharpH, ok = producer.Arg(0).TryInst(); !ok {
			return 0, fmt.Errorf("%w: image handle lane is not an instruction", ErrUnsupported)
		}
		if ssharpH, ok = producer.Arg(1).TryInst(); !ok {
			return 0, fmt.Errorf("%w: sampler handle lane is not an instruction", ErrUnsupported)
		}
	}

	// Read the image sharp.
	tloc, err := TrackSharp(p, tsharpH)
	if err != nil {
		return 0, err
	}
	image, err := info.ReadImageSharp(tloc.SgprBase, tloc.DwordOffset)
	if err != nil {
		return 0, err
	}
	texInfo := inst.TextureInfo()
	binding, err := d.AddImage(shader.ImageResource{
		SgprBase:    tloc.SgprBase,
		DwordOffset: tloc.DwordOffset,
		Type:        image.Type(),
		Nfmt:        image.NumberFmt(),
		IsStorage:   isImageStorageInstruction(inst),
		IsDepth:     texInfo.IsDepth(),
	})
	if err != nil {
		return 0, err
	}

	// Read the sampler sharp. Absent for load/store instructions.
	if ssharpH != ir.InvalidInst {
		ssharpUd, disableAniso := tryDisableAnisoLod0(p, ssharpH)
		sloc, err := TrackSharp(p, ssharpUd)
		if err != nil {
			return 0, err
		}
		samplerBinding, err := d.AddSampler(shader.SamplerResource{
			SgprBase:        sloc.SgprBase,
			DwordOffset:     sloc.DwordOffset,
			AssociatedImage: binding,
			DisableAniso:    disableAniso,
		})
		if err != nil {
			return 0, err
		}
		binding |= samplerBinding << 16
	}

	inst.SetArg(0, ir.Imm32(binding))

	// Nothing else to rewrite when just querying.
	if inst.Op == ir.OpImageQueryDimensions {
		return 0, nil
	}

	// Now that the image type is known, reshape the coordinate vector.
	bodyH, ok := inst.Arg(1).TryInst()
	if !ok {
		return 0, fmt.Errorf("%w: image coordinates are not a composite", ErrUnsupported)
	}
	body := p.Inst(bodyH)
	em := ir.NewEmitter(p, b, pos)
	var coords, spare ir.Value
	switch image.Type() {
	case amdgpu.Image1D: // x
		coords, spare = body.Arg(0), body.Arg(1)
	case amdgpu.Image1DArray, // x, slice
		amdgpu.Image2D: // x, y
		coords = em.CompositeConstructF32x2(body.Arg(0), body.Arg(1))
		spare = body.Arg(2)
	case amdgpu.Image2DArray, // x, y, slice
		amdgpu.Image2DMsaa, // x, y, frag
		amdgpu.Image3D: // x, y, z
		coords = em.CompositeConstructF32x3(body.Arg(0), body.Arg(1), body.Arg(2))
		spare = body.Arg(3)
	case amdgpu.ImageCube: // x, y, face
		coords = patchCubeCoord(em, body.Arg(0), body.Arg(1), body.Arg(2))
		spare = body.Arg(3)
	default:
		return 0, fmt.Errorf("%w: image type %v", ErrUnsupported, image.Type())
	}
	inst.SetArg(1, coords)

	if texInfo.HasOffset() {
		// Texel offsets are three 6-bit signed fields: X=[5:0],
		// Y=[13:8], Z=[21:16]. Z is unused downstream.
		argPos := 3
		if texInfo.IsDepth() {
			argPos = 4
		}
		arg := inst.Arg(argPos)
		if !arg.IsImmediate() {
			return 0, fmt.Errorf("%w: non-immediate texel offset operand", ErrUnsupported)
		}
		raw := arg.U32()
		offsets := em.CompositeConstructU32x2(signExt6(raw&0x3F), signExt6(raw>>8&0x3F))
		inst.SetArg(argPos, offsets)
	}

	if texInfo.HasLodClamp() {
		// The spare coordinate lane carries the clamp value.
		argPos := 4
		if texInfo.IsDepth() {
			argPos = 5
		}
		inst.SetArg(argPos, spare)
	}
	if texInfo.ExplicitLod() {
		switch inst.Op {
		case ir.OpImageFetch, ir.OpImageSampleExplicitLod, ir.OpImageSampleDrefExplicitLod:
		default:
			return 0, fmt.Errorf("%w: explicit LOD on %s", ErrInvariant, inst.Op)
		}
		argPos := 3
		if inst.Op == ir.OpImageSampleExplicitLod {
			argPos = 2
		}
		inst.SetArg(argPos, spare)
	}
	return em.Inserted(), nil
}
