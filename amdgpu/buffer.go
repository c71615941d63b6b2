package amdgpu

// Buffer is a V# buffer resource descriptor, stored as its four raw
// hardware dwords. The zero value is an invalid descriptor.
type Buffer [4]uint32

// BufferFromDwords builds a Buffer from at least four raw dwords.
func BufferFromDwords(words []uint32) Buffer {
	var b Buffer
	copy(b[:], words)
	return b
}

// BufferFromQwords builds a Buffer from the two 64-bit halves of the
// descriptor, low half first.
func BufferFromQwords(lo, hi uint64) Buffer {
	return Buffer{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (b Buffer) low() uint64 {
	return uint64(b[0]) | uint64(b[1])<<32
}

// Valid reports whether the descriptor is non-zero.
func (b Buffer) Valid() bool {
	return b != Buffer{}
}

// BaseAddress returns the 44-bit byte address of the buffer.
func (b Buffer) BaseAddress() uint64 {
	return b.low() & (1<<44 - 1)
}

// Stride returns the raw 14-bit record stride in bytes.
func (b Buffer) Stride() uint32 {
	return uint32(b.low()>>48) & 0x3FFF
}

// CacheSwizzle reports the cache swizzle bit.
func (b Buffer) CacheSwizzle() bool {
	return b.low()>>62&1 != 0
}

// SwizzleEnable reports whether element swizzling is enabled.
// Swizzled buffers are not supported by the recompiler.
func (b Buffer) SwizzleEnable() bool {
	return b.low()>>63 != 0
}

// NumRecords returns the record count (or byte count for stride 0).
func (b Buffer) NumRecords() uint32 {
	return b[2]
}

// NumberFmt returns the numeric format field.
func (b Buffer) NumberFmt() NumberFormat {
	return NumberFormat(b[3] >> 12 & 0x7)
}

// DataFmt returns the data format field.
func (b Buffer) DataFmt() DataFormat {
	return DataFormat(b[3] >> 15 & 0xF)
}

// ElementSize returns the raw 2-bit element size field.
func (b Buffer) ElementSize() uint32 {
	return b[3] >> 19 & 0x3
}

// IndexStride returns the raw 2-bit index stride field.
func (b Buffer) IndexStride() uint32 {
	return b[3] >> 21 & 0x3
}

// AddTidEnable reports whether the thread id is added to the index.
// Not supported by the recompiler.
func (b Buffer) AddTidEnable() bool {
	return b[3]>>23&1 != 0
}

// EffectiveStride returns the record stride, treating the raw stride 0
// (byte-addressed buffer) as one byte per record.
func (b Buffer) EffectiveStride() uint32 {
	if b.Stride() == 0 {
		return 1
	}
	return b.Stride()
}

// StrideElements returns the stride measured in elements of elemSize
// bytes. A raw stride of 0 counts as a single element.
func (b Buffer) StrideElements(elemSize uint32) uint32 {
	if b.Stride() == 0 {
		return 1
	}
	return b.Stride() / elemSize
}

// Size returns the total buffer size in bytes.
func (b Buffer) Size() uint32 {
	return b.EffectiveStride() * b.NumRecords()
}
