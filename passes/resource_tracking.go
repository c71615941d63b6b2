package passes

import (
	"github.com/ThatOneCalculator/shadPS4/ir"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

func isBufferInstruction(inst *ir.Inst) bool {
	switch inst.Op {
	case ir.OpLoadBufferF32,
		ir.OpLoadBufferF32x2,
		ir.OpLoadBufferF32x3,
		ir.OpLoadBufferF32x4,
		ir.OpLoadBufferU32,
		ir.OpReadConstBuffer,
		ir.OpReadConstBufferU32,
		ir.OpStoreBufferF32,
		ir.OpStoreBufferF32x2,
		ir.OpStoreBufferF32x3,
		ir.OpStoreBufferF32x4,
		ir.OpStoreBufferU32:
		return true
	default:
		return false
	}
}

func bufferDataType(inst *ir.Inst) ir.Type {
	switch inst.Op {
	case ir.OpLoadBufferU32, ir.OpReadConstBufferU32, ir.OpStoreBufferU32:
		return ir.TypeU32
	default:
		return ir.TypeF32
	}
}

func isBufferStore(inst *ir.Inst) bool {
	switch inst.Op {
	case ir.OpStoreBufferF32,
		ir.OpStoreBufferF32x2,
		ir.OpStoreBufferF32x3,
		ir.OpStoreBufferF32x4,
		ir.OpStoreBufferU32:
		return true
	default:
		return false
	}
}

func isImageInstruction(inst *ir.Inst) bool {
	switch inst.Op {
	case ir.OpImageSampleExplicitLod,
		ir.OpImageSampleImplicitLod,
		ir.OpImageSampleDrefExplicitLod,
		ir.OpImageSampleDrefImplicitLod,
		ir.OpImageFetch,
		ir.OpImageGather,
		ir.OpImageGatherDref,
		ir.OpImageQueryDimensions,
		ir.OpImageQueryLod,
		ir.OpImageGradient,
		ir.OpImageRead,
		ir.OpImageWrite,
		ir.OpImageAtomicIAdd32,
		ir.OpImageAtomicSMin32,
		ir.OpImageAtomicUMin32,
		ir.OpImageAtomicSMax32,
		ir.OpImageAtomicUMax32,
		ir.OpImageAtomicInc32,
		ir.OpImageAtomicDec32,
		ir.OpImageAtomicAnd32,
		ir.OpImageAtomicOr32,
		ir.OpImageAtomicXor32,
		ir.OpImageAtomicExchange32:
		return true
	default:
		return false
	}
}

func isImageStorageInstruction(inst *ir.Inst) bool {
	switch inst.Op {
	case ir.OpImageRead,
		ir.OpImageWrite,
		ir.OpImageAtomicIAdd32,
		ir.OpImageAtomicSMin32,
		ir.OpImageAtomicUMin32,
		ir.OpImageAtomicSMax32,
		ir.OpImageAtomicUMax32,
		ir.OpImageAtomicInc32,
		ir.OpImageAtomicDec32,
		ir.OpImageAtomicAnd32,
		ir.OpImageAtomicOr32,
		ir.OpImageAtomicXor32,
		ir.OpImageAtomicExchange32:
		return true
	default:
		return false
	}
}

// ResourceTrackingPass discovers every buffer, image and sampler
// descriptor the program references, registers each in info's
// descriptor collections, and rewrites the accessing instructions to
// reference binding indices. Blocks are visited in reverse post order;
// patchers may insert address computation instructions ahead of the
// access they rewrite.
func ResourceTrackingPass(p *ir.Program, info *shader.Info) error {
	d := NewDescriptors(info)
	for _, block := range p.Blocks {
		for n := 0; n < block.Len(); n++ {
			inst := p.Inst(block.At(n))
			switch {
			case isBufferInstruction(inst):
				inserted, err := patchBufferInstruction(p, block, n, info, d)
				if err != nil {
					return err
				}
				n += inserted
			case isImageInstruction(inst):
				inserted, err := patchImageInstruction(p, block, n, info, d)
				if err != nil {
					return err
				}
				n += inserted
			}
		}
	}
	return nil
}
