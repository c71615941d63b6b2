package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

func TestResourceTrackingPassEndToEnd(t *testing.T) {
	// One V# at s0 and one T# at s8, referenced from two blocks. The
	// pass must dedup the buffer across blocks, merge the store into a
	// storage binding, and keep iterating correctly past the address
	// arithmetic it inserts.
	sharp := amdgpu.BufferFromQwords(uint64(0x4000)|uint64(16)<<48, 64)
	info := &shader.Info{Stage: shader.StageCompute}
	copy(info.UserData[0:], sharp[:])
	img := imageWords(amdgpu.Image2D)
	copy(info.UserData[8:], img[:])

	p := ir.NewProgram()
	b0 := p.NewBlock()
	b1 := p.NewBlock()

	flags := ir.BufferInstInfo(0).WithIndexEnable(true)
	load := appendBufferAccess(p, b0, ir.OpLoadBufferF32x4, 0, flags, ir.Imm32(1))
	loadAfter := appendBufferAccess(p, b0, ir.OpLoadBufferF32, 0, flags, ir.Imm32(2))

	store := appendBufferAccess(p, b1, ir.OpStoreBufferU32, 0, flags, ir.Imm32(3))
	tsharp := p.Append(b1, ir.OpGetUserData, ir.RegValue(8))
	body := p.Append(b1, ir.OpCompositeConstructF32x3, ir.ImmF32(0), ir.ImmF32(0), ir.ImmF32(0))
	fetch := p.AppendWithFlags(b1, ir.OpImageFetch, 0, ir.InstValue(tsharp), ir.InstValue(body), ir.Imm32(0))

	require.NoError(t, ResourceTrackingPass(p, info))

	// One buffer binding, referenced by all three accesses.
	require.Len(t, info.Buffers, 1)
	for _, h := range []ir.InstHandle{load, loadAfter, store} {
		assert.Equal(t, uint32(0), p.Inst(h).Arg(0).U32())
	}
	merged := info.Buffers[0]
	assert.True(t, merged.IsStorage)
	assert.Equal(t, ir.TypeF32|ir.TypeU32, merged.UsedTypes)

	require.Len(t, info.Images, 1)
	assert.Equal(t, uint32(0), p.Inst(fetch).Arg(0).U32())
	assert.Equal(t, uint32(8), info.Images[0].DwordOffset)

	// Every access got its own address chain.
	for _, h := range []ir.InstHandle{load, loadAfter, store} {
		addr := p.Inst(p.Inst(h).Arg(1).Inst())
		assert.Equal(t, ir.OpIAdd32, addr.Op)
	}
}

func TestResourceTrackingPassPropagatesErrors(t *testing.T) {
	// A failure in a later block must surface from the pass itself.
	good := amdgpu.BufferFromQwords(uint64(0x4000)|uint64(4)<<48, 16)
	swizzled := amdgpu.BufferFromQwords(uint64(0x4000)|uint64(4)<<48|1<<63, 16)
	info := &shader.Info{}
	copy(info.UserData[0:], good[:])
	copy(info.UserData[4:], swizzled[:])

	p := ir.NewProgram()
	b0 := p.NewBlock()
	b1 := p.NewBlock()
	appendBufferAccess(p, b0, ir.OpLoadBufferF32, 0, 0, ir.Imm32(0))
	appendBufferAccess(p, b1, ir.OpLoadBufferF32, 4, 0, ir.Imm32(0))

	err := ResourceTrackingPass(p, info)
	require.ErrorIs(t, err, ErrUnsupported)
	// The first access still got patched before the failure.
	assert.Len(t, info.Buffers, 1)
}

func TestResourceTrackingPassIgnoresUnrelatedInstructions(t *testing.T) {
	info := &shader.Info{}
	p := ir.NewProgram()
	b := p.NewBlock()
	p.Append(b, ir.OpIAdd32, ir.Imm32(1), ir.Imm32(2))
	p.Append(b, ir.OpIMul32, ir.Imm32(3), ir.Imm32(4))

	require.NoError(t, ResourceTrackingPass(p, info))
	assert.Empty(t, info.Buffers)
	assert.Empty(t, info.Images)
	assert.Empty(t, info.Samplers)
	assert.Equal(t, 2, b.Len())
}
