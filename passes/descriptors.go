package passes

import (
	"fmt"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

// Identity keys for descriptor deduplication. Fields outside the key
// are merged on repeated registration instead of distinguishing
// entries.
type bufferKey struct {
	sgprBase    uint32
	dwordOffset uint32
	inlineCbuf  amdgpu.Buffer
}

type imageKey struct {
	sgprBase    uint32
	dwordOffset uint32
	typ         amdgpu.ImageType
	isStorage   bool
}

type samplerKey struct {
	sgprBase    uint32
	dwordOffset uint32
}

// Descriptors assigns stable binding indices to the resources a pass
// discovers. Entries are appended to the Info collections, never
// removed, so an index handed out once stays valid for the table's
// lifetime. Each kind is capped at shader.MaxResources, the hardware
// binding-slot limit.
type Descriptors struct {
	info     *shader.Info
	buffers  map[bufferKey]uint32
	images   map[imageKey]uint32
	samplers map[samplerKey]uint32
}

// NewDescriptors returns a table registering resources into info.
func NewDescriptors(info *shader.Info) *Descriptors {
	return &Descriptors{
		info:     info,
		buffers:  make(map[bufferKey]uint32),
		images:   make(map[imageKey]uint32),
		samplers: make(map[samplerKey]uint32),
	}
}

// AddBuffer registers a buffer resource and returns its binding index.
// A repeated registration of the same descriptor merges usage metadata
// into the existing entry; a shape mismatch between merged references
// is an invariant violation.
func (d *Descriptors) AddBuffer(desc shader.BufferResource) (uint32, error) {
	key := bufferKey{desc.SgprBase, desc.DwordOffset, desc.InlineCbuf}
	if index, ok := d.buffers[key]; ok {
		existing := &d.info.Buffers[index]
		if existing.Stride != desc.Stride || existing.NumRecords != desc.NumRecords {
			return 0, fmt.Errorf("%w: buffer %d shape changed between references (stride %d/%d, records %d/%d)",
				ErrInvariant, index, existing.Stride, desc.Stride, existing.NumRecords, desc.NumRecords)
		}
		existing.UsedTypes |= desc.UsedTypes
		existing.IsStorage = existing.IsStorage || desc.IsStorage
		return index, nil
	}
	if len(d.info.Buffers) >= shader.MaxResources {
		return 0, fmt.Errorf("%w: more than %d distinct buffers", ErrInvariant, shader.MaxResources)
	}
	index := uint32(len(d.info.Buffers))
	d.info.Buffers = append(d.info.Buffers, desc)
	d.buffers[key] = index
	return index, nil
}

// AddImage registers an image resource and returns its binding index.
func (d *Descriptors) AddImage(desc shader.ImageResource) (uint32, error) {
	key := imageKey{desc.SgprBase, desc.DwordOffset, desc.Type, desc.IsStorage}
	if index, ok := d.images[key]; ok {
		return index, nil
	}
	if len(d.info.Images) >= shader.MaxResources {
		return 0, fmt.Errorf("%w: more than %d distinct images", ErrInvariant, shader.MaxResources)
	}
	index := uint32(len(d.info.Images))
	d.info.Images = append(d.info.Images, desc)
	d.images[key] = index
	return index, nil
}

// AddSampler registers a sampler resource and returns its binding
// index. Identity is the descriptor location alone; the associated
// image and aniso flag stay as recorded at first discovery.
func (d *Descriptors) AddSampler(desc shader.SamplerResource) (uint32, error) {
	key := samplerKey{desc.SgprBase, desc.DwordOffset}
	if index, ok := d.samplers[key]; ok {
		return index, nil
	}
	if len(d.info.Samplers) >= shader.MaxResources {
		return 0, fmt.Errorf("%w: more than %d distinct samplers", ErrInvariant, shader.MaxResources)
	}
	index := uint32(len(d.info.Samplers))
	d.info.Samplers = append(d.info.Samplers, desc)
	d.samplers[key] = index
	return index, nil
}
