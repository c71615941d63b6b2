package amdgpu

// Image is a T# image resource descriptor, stored as its eight raw
// hardware dwords. Only the first four dwords carry the fields the
// recompiler needs; the rest are kept for completeness.
type Image [8]uint32

// ImageFromDwords builds an Image from at least eight raw dwords.
func ImageFromDwords(words []uint32) Image {
	var img Image
	copy(img[:], words)
	return img
}

func (i Image) qword(n int) uint64 {
	return uint64(i[2*n]) | uint64(i[2*n+1])<<32
}

// Valid reports whether the descriptor is non-zero.
func (i Image) Valid() bool {
	return i != Image{}
}

// BaseAddress256 returns the raw 38-bit base address field, in units
// of 256 bytes.
func (i Image) BaseAddress256() uint64 {
	return i.qword(0) & (1<<38 - 1)
}

// Address returns the byte address of the image data.
func (i Image) Address() uint64 {
	return i.BaseAddress256() << 8
}

// MinLod returns the 12-bit fixed-point minimum level of detail.
func (i Image) MinLod() uint32 {
	return uint32(i.qword(0)>>40) & 0xFFF
}

// DataFmt returns the data format field.
func (i Image) DataFmt() DataFormat {
	return DataFormat(i.qword(0) >> 52 & 0x3F)
}

// NumberFmt returns the numeric format field.
func (i Image) NumberFmt() NumberFormat {
	return NumberFormat(i.qword(0) >> 58 & 0xF)
}

// Width returns the image width minus one, as stored by hardware.
func (i Image) Width() uint32 {
	return uint32(i.qword(1)) & 0x3FFF
}

// Height returns the image height minus one, as stored by hardware.
func (i Image) Height() uint32 {
	return uint32(i.qword(1)>>14) & 0x3FFF
}

// BaseLevel returns the first mip level in the view.
func (i Image) BaseLevel() uint32 {
	return uint32(i.qword(1)>>44) & 0xF
}

// LastLevel returns the last mip level in the view.
func (i Image) LastLevel() uint32 {
	return uint32(i.qword(1)>>48) & 0xF
}

// TilingIndex returns the 5-bit tiling mode index.
func (i Image) TilingIndex() uint32 {
	return uint32(i.qword(1)>>52) & 0x1F
}

// Type returns the resource type field (bits 127:124).
func (i Image) Type() ImageType {
	return ImageType(i.qword(1) >> 60)
}
