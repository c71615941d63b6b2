package shader

import (
	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
)

// MaxResources is the hardware binding-slot limit per resource kind.
// A shader referencing more than this many distinct buffers, images or
// samplers cannot be bound and must fail compilation.
const MaxResources = 16

// InlineSgprBase is the SgprBase sentinel of a resource whose
// descriptor was reconstructed from immediates in code rather than
// resolved to a register or memory location.
const InlineSgprBase = ^uint32(0)

// BufferResource describes one discovered buffer binding. Its index in
// Info.Buffers is the binding the rewritten instructions reference.
type BufferResource struct {
	// SgprBase and DwordOffset locate the V# descriptor: SgprBase is
	// ir.NumScalarRegs when DwordOffset names a user-data register
	// directly, InlineSgprBase for inline descriptors, and otherwise
	// the low register of the pair holding the indirect pointer.
	SgprBase    uint32
	DwordOffset uint32

	// Stride and NumRecords are the descriptor's shape. They must be
	// identical across every reference merged into this entry.
	Stride     uint32
	NumRecords uint32

	// UsedTypes accumulates the data types observed across accesses.
	UsedTypes ir.Type

	// InlineCbuf holds the full descriptor for inline constant
	// buffers. Mutually exclusive with location-based resolution.
	InlineCbuf amdgpu.Buffer

	// IsStorage marks buffers that must be bound as storage rather
	// than uniform, because they are written or exceed the uniform
	// size limit.
	IsStorage bool
}

// Sharp returns the buffer descriptor, from the inline copy when
// present and from the user-data window otherwise.
func (b *BufferResource) Sharp(info *Info) (amdgpu.Buffer, error) {
	if b.InlineCbuf.Valid() {
		return b.InlineCbuf, nil
	}
	return info.ReadBufferSharp(b.SgprBase, b.DwordOffset)
}

// ImageResource describes one discovered image binding.
type ImageResource struct {
	SgprBase    uint32
	DwordOffset uint32

	// Type is the image dimensionality from the T# descriptor.
	Type amdgpu.ImageType

	// Nfmt is the numeric format from the T# descriptor.
	Nfmt amdgpu.NumberFormat

	// IsStorage marks images accessed with load/store/atomic ops.
	IsStorage bool

	// IsDepth marks depth-comparing accesses.
	IsDepth bool
}

// SamplerResource describes one discovered sampler binding.
type SamplerResource struct {
	SgprBase    uint32
	DwordOffset uint32

	// AssociatedImage is the image binding this sampler was paired
	// with when first discovered.
	AssociatedImage uint32

	// DisableAniso is set when the shader guards the sampler with the
	// aniso-disable idiom for textures without a mip chain.
	DisableAniso bool
}
