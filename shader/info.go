package shader

import (
	"fmt"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
)

// NumUserDataRegs is the size of the user-data register window.
const NumUserDataRegs = 16

// Memory reads dwords from guest constant memory. The recompiler
// dereferences it when a user-data register pair points at a
// descriptor table held in memory rather than in the window itself.
type Memory interface {
	ReadDwords(addr uint64, dst []uint32) error
}

// Info aggregates everything one shader-program compilation shares
// across stages. It is exclusively owned by that compilation;
// independent programs compile against independent Infos.
type Info struct {
	// Stage is the hardware stage the program runs as.
	Stage Stage

	// UserData is the register window preloaded per draw/dispatch.
	// Some words are sharp dwords, some are pointer pairs into Mem.
	UserData [NumUserDataRegs]uint32

	// NumUserData is how many window words the program declares.
	NumUserData uint32

	// PgmBase is the base address of the program image; inline
	// constant buffers encode addresses relative to it.
	PgmBase uint64

	// Mem resolves indirect descriptor reads. May be nil for programs
	// whose descriptors all live in the window.
	Mem Memory

	// PgmHash identifies the program binary for caching/diagnostics.
	PgmHash uint64

	// Descriptor collections populated by the resource tracking pass,
	// at most MaxResources entries each. Entry positions are the
	// binding indices the rewritten instruction graph references.
	Buffers  []BufferResource
	Images   []ImageResource
	Samplers []SamplerResource
}

// ReadUd copies len(dst) dwords of descriptor data located at
// (sgprBase, dwordOffset). A sgprBase of ir.NumScalarRegs reads the
// user-data window directly at dwordOffset; otherwise the window pair
// at sgprBase holds a 64-bit pointer into constant memory and the read
// goes through Mem.
func (i *Info) ReadUd(sgprBase, dwordOffset uint32, dst []uint32) error {
	if sgprBase == ir.NumScalarRegs {
		if int(dwordOffset)+len(dst) > len(i.UserData) {
			return fmt.Errorf("shader: user data read of %d dwords at %d exceeds window", len(dst), dwordOffset)
		}
		copy(dst, i.UserData[dwordOffset:])
		return nil
	}
	if int(sgprBase)+1 >= len(i.UserData) {
		return fmt.Errorf("shader: indirect descriptor base s%d outside user data window", sgprBase)
	}
	if i.Mem == nil {
		return fmt.Errorf("shader: indirect descriptor read through s%d with no memory attached", sgprBase)
	}
	base := uint64(i.UserData[sgprBase]) | uint64(i.UserData[sgprBase+1])<<32
	return i.Mem.ReadDwords(base+uint64(dwordOffset)*4, dst)
}

// ReadBufferSharp reads a V# descriptor located at (sgprBase, dwordOffset).
func (i *Info) ReadBufferSharp(sgprBase, dwordOffset uint32) (amdgpu.Buffer, error) {
	var words [4]uint32
	if err := i.ReadUd(sgprBase, dwordOffset, words[:]); err != nil {
		return amdgpu.Buffer{}, err
	}
	return amdgpu.Buffer(words), nil
}

// ReadImageSharp reads a T# descriptor located at (sgprBase, dwordOffset).
func (i *Info) ReadImageSharp(sgprBase, dwordOffset uint32) (amdgpu.Image, error) {
	var words [8]uint32
	if err := i.ReadUd(sgprBase, dwordOffset, words[:]); err != nil {
		return amdgpu.Image{}, err
	}
	return amdgpu.Image(words), nil
}

// ReadSamplerSharp reads an S# descriptor located at (sgprBase, dwordOffset).
func (i *Info) ReadSamplerSharp(sgprBase, dwordOffset uint32) (amdgpu.Sampler, error) {
	var words [4]uint32
	if err := i.ReadUd(sgprBase, dwordOffset, words[:]); err != nil {
		return amdgpu.Sampler{}, err
	}
	return amdgpu.Sampler(words), nil
}
