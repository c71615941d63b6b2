package ir

import "github.com/ThatOneCalculator/shadPS4/amdgpu"

// BufferInstInfo is the packed flags payload carried by buffer access
// instructions. It mirrors the addressing fields of the hardware
// MUBUF/MTBUF encoding.
//
// Layout: bits 11:0 inst offset, bit 12 index enable, bit 13 offset
// enable, bit 14 typed, bits 19:16 data format, bits 22:20 number
// format.
type BufferInstInfo uint32

// InstOffset returns the static byte offset encoded in the instruction.
func (i BufferInstInfo) InstOffset() uint32 {
	return uint32(i) & 0xFFF
}

// IndexEnable reports whether operand 1 carries a dynamic record index.
func (i BufferInstInfo) IndexEnable() bool {
	return i>>12&1 != 0
}

// OffsetEnable reports whether operand 1 carries a dynamic byte offset.
func (i BufferInstInfo) OffsetEnable() bool {
	return i>>13&1 != 0
}

// IsTyped reports whether the access is format-converting (MTBUF).
func (i BufferInstInfo) IsTyped() bool {
	return i>>14&1 != 0
}

// DataFmt returns the data format of a typed access.
func (i BufferInstInfo) DataFmt() amdgpu.DataFormat {
	return amdgpu.DataFormat(i >> 16 & 0xF)
}

// NumberFmt returns the number format of a typed access.
func (i BufferInstInfo) NumberFmt() amdgpu.NumberFormat {
	return amdgpu.NumberFormat(i >> 20 & 0x7)
}

// WithInstOffset returns a copy with the static byte offset set.
func (i BufferInstInfo) WithInstOffset(off uint32) BufferInstInfo {
	return i&^0xFFF | BufferInstInfo(off&0xFFF)
}

// WithIndexEnable returns a copy with the index-enable bit set.
func (i BufferInstInfo) WithIndexEnable(on bool) BufferInstInfo {
	return i.withBit(12, on)
}

// WithOffsetEnable returns a copy with the offset-enable bit set.
func (i BufferInstInfo) WithOffsetEnable(on bool) BufferInstInfo {
	return i.withBit(13, on)
}

// WithTyped returns a copy with the typed bit set.
func (i BufferInstInfo) WithTyped(on bool) BufferInstInfo {
	return i.withBit(14, on)
}

// WithFormats returns a copy with the typed-access formats set.
func (i BufferInstInfo) WithFormats(dfmt amdgpu.DataFormat, nfmt amdgpu.NumberFormat) BufferInstInfo {
	i = i &^ (0xF<<16 | 0x7<<20)
	return i | BufferInstInfo(dfmt&0xF)<<16 | BufferInstInfo(nfmt&0x7)<<20
}

func (i BufferInstInfo) withBit(bit uint, on bool) BufferInstInfo {
	if on {
		return i | 1<<bit
	}
	return i &^ (1 << bit)
}

// TextureInstInfo is the packed flags payload carried by image access
// instructions.
//
// Layout: bit 0 depth compare, bit 1 static offset present, bit 2 LOD
// clamp present, bit 3 explicit LOD.
type TextureInstInfo uint32

// IsDepth reports whether the access is depth-comparing.
func (i TextureInstInfo) IsDepth() bool {
	return i&1 != 0
}

// HasOffset reports whether a packed static texel offset is present.
func (i TextureInstInfo) HasOffset() bool {
	return i>>1&1 != 0
}

// HasLodClamp reports whether a LOD clamp operand is present.
func (i TextureInstInfo) HasLodClamp() bool {
	return i>>2&1 != 0
}

// ExplicitLod reports whether the access supplies its LOD directly.
func (i TextureInstInfo) ExplicitLod() bool {
	return i>>3&1 != 0
}

// WithDepth returns a copy with the depth-compare bit set.
func (i TextureInstInfo) WithDepth(on bool) TextureInstInfo {
	return i.withBit(0, on)
}

// WithOffset returns a copy with the static-offset bit set.
func (i TextureInstInfo) WithOffset(on bool) TextureInstInfo {
	return i.withBit(1, on)
}

// WithLodClamp returns a copy with the LOD-clamp bit set.
func (i TextureInstInfo) WithLodClamp(on bool) TextureInstInfo {
	return i.withBit(2, on)
}

// WithExplicitLod returns a copy with the explicit-LOD bit set.
func (i TextureInstInfo) WithExplicitLod(on bool) TextureInstInfo {
	return i.withBit(3, on)
}

func (i TextureInstInfo) withBit(bit uint, on bool) TextureInstInfo {
	if on {
		return i | 1<<bit
	}
	return i &^ (1 << bit)
}
