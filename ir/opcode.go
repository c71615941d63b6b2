package ir

// Opcode identifies an instruction's operation.
type Opcode uint16

const (
	OpInvalid Opcode = iota

	// OpPhi merges values across control-flow predecessors.
	OpPhi

	// OpGetUserData reads a user-data register; arg 0 is the register.
	OpGetUserData

	// OpReadConst reads a dword from constant memory; arg 0 produces
	// the 64-bit base address pair, arg 1 is an immediate dword offset.
	OpReadConst

	// Composite construction and extraction
	OpCompositeConstructU32x2
	OpCompositeConstructU32x4
	OpCompositeConstructF32x2
	OpCompositeConstructF32x3
	OpCompositeConstructF32x4
	OpCompositeExtractU32 // arg 0 composite, arg 1 immediate lane

	// Scalar ALU
	OpIAdd32
	OpIMul32
	OpShiftRightLogical32
	OpBitwiseAnd32
	OpBitFieldUExtract
	OpIEqual32
	OpSelectU32
	OpFPSub32

	// Buffer access; arg 0 is the resource handle, arg 1 the address.
	OpLoadBufferF32
	OpLoadBufferF32x2
	OpLoadBufferF32x3
	OpLoadBufferF32x4
	OpLoadBufferU32
	OpReadConstBuffer
	OpReadConstBufferU32
	OpStoreBufferF32
	OpStoreBufferF32x2
	OpStoreBufferF32x3
	OpStoreBufferF32x4
	OpStoreBufferU32

	// Image access; arg 0 is the resource handle, arg 1 the coordinates.
	OpImageSampleExplicitLod
	OpImageSampleImplicitLod
	OpImageSampleDrefExplicitLod
	OpImageSampleDrefImplicitLod
	OpImageFetch
	OpImageGather
	OpImageGatherDref
	OpImageQueryDimensions
	OpImageQueryLod
	OpImageGradient
	OpImageRead
	OpImageWrite
	OpImageAtomicIAdd32
	OpImageAtomicSMin32
	OpImageAtomicUMin32
	OpImageAtomicSMax32
	OpImageAtomicUMax32
	OpImageAtomicInc32
	OpImageAtomicDec32
	OpImageAtomicAnd32
	OpImageAtomicOr32
	OpImageAtomicXor32
	OpImageAtomicExchange32

	opCount // sentinel; must be last
)

// opNames maps each Opcode to its printable name. Index by Opcode value.
var opNames = [opCount]string{
	OpInvalid:                    "Invalid",
	OpPhi:                        "Phi",
	OpGetUserData:                "GetUserData",
	OpReadConst:                  "ReadConst",
	OpCompositeConstructU32x2:    "CompositeConstructU32x2",
	OpCompositeConstructU32x4:    "CompositeConstructU32x4",
	OpCompositeConstructF32x2:    "CompositeConstructF32x2",
	OpCompositeConstructF32x3:    "CompositeConstructF32x3",
	OpCompositeConstructF32x4:    "CompositeConstructF32x4",
	OpCompositeExtractU32:        "CompositeExtractU32",
	OpIAdd32:                     "IAdd32",
	OpIMul32:                     "IMul32",
	OpShiftRightLogical32:        "ShiftRightLogical32",
	OpBitwiseAnd32:               "BitwiseAnd32",
	OpBitFieldUExtract:           "BitFieldUExtract",
	OpIEqual32:                   "IEqual32",
	OpSelectU32:                  "SelectU32",
	OpFPSub32:                    "FPSub32",
	OpLoadBufferF32:              "LoadBufferF32",
	OpLoadBufferF32x2:            "LoadBufferF32x2",
	OpLoadBufferF32x3:            "LoadBufferF32x3",
	OpLoadBufferF32x4:            "LoadBufferF32x4",
	OpLoadBufferU32:              "LoadBufferU32",
	OpReadConstBuffer:            "ReadConstBuffer",
	OpReadConstBufferU32:         "ReadConstBufferU32",
	OpStoreBufferF32:             "StoreBufferF32",
	OpStoreBufferF32x2:           "StoreBufferF32x2",
	OpStoreBufferF32x3:           "StoreBufferF32x3",
	OpStoreBufferF32x4:           "StoreBufferF32x4",
	OpStoreBufferU32:             "StoreBufferU32",
	OpImageSampleExplicitLod:     "ImageSampleExplicitLod",
	OpImageSampleImplicitLod:     "ImageSampleImplicitLod",
	OpImageSampleDrefExplicitLod: "ImageSampleDrefExplicitLod",
	OpImageSampleDrefImplicitLod: "ImageSampleDrefImplicitLod",
	OpImageFetch:                 "ImageFetch",
	OpImageGather:                "ImageGather",
	OpImageGatherDref:            "ImageGatherDref",
	OpImageQueryDimensions:       "ImageQueryDimensions",
	OpImageQueryLod:              "ImageQueryLod",
	OpImageGradient:              "ImageGradient",
	OpImageRead:                  "ImageRead",
	OpImageWrite:                 "ImageWrite",
	OpImageAtomicIAdd32:          "ImageAtomicIAdd32",
	OpImageAtomicSMin32:          "ImageAtomicSMin32",
	OpImageAtomicUMin32:          "ImageAtomicUMin32",
	OpImageAtomicSMax32:          "ImageAtomicSMax32",
	OpImageAtomicUMax32:          "ImageAtomicUMax32",
	OpImageAtomicInc32:           "ImageAtomicInc32",
	OpImageAtomicDec32:           "ImageAtomicDec32",
	OpImageAtomicAnd32:           "ImageAtomicAnd32",
	OpImageAtomicOr32:            "ImageAtomicOr32",
	OpImageAtomicXor32:           "ImageAtomicXor32",
	OpImageAtomicExchange32:      "ImageAtomicExchange32",
}

// String returns the human-readable name of the opcode.
func (o Opcode) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "unknown"
}
