package amdgpu

// Sampler is an S# sampler descriptor, stored as its four raw
// hardware dwords.
type Sampler [4]uint32

// SamplerFromDwords builds a Sampler from at least four raw dwords.
func SamplerFromDwords(words []uint32) Sampler {
	var s Sampler
	copy(s[:], words)
	return s
}

// ClampX returns the X axis address clamp mode.
func (s Sampler) ClampX() uint32 {
	return s[0] & 0x7
}

// ClampY returns the Y axis address clamp mode.
func (s Sampler) ClampY() uint32 {
	return s[0] >> 3 & 0x7
}

// ClampZ returns the Z axis address clamp mode.
func (s Sampler) ClampZ() uint32 {
	return s[0] >> 6 & 0x7
}

// MaxAnisoRatio returns the 3-bit anisotropy ratio field (bits 11:9).
// This is the field the aniso-disable shader idiom masks to zero.
func (s Sampler) MaxAnisoRatio() uint32 {
	return s[0] >> 9 & 0x7
}

// DepthCompareFunc returns the depth comparison function field.
func (s Sampler) DepthCompareFunc() uint32 {
	return s[0] >> 12 & 0x7
}

// ForceUnnormalized reports whether coordinates are unnormalized.
func (s Sampler) ForceUnnormalized() bool {
	return s[0]>>15&1 != 0
}

// MinLod returns the 12-bit fixed-point minimum LOD clamp.
func (s Sampler) MinLod() uint32 {
	return s[1] & 0xFFF
}

// MaxLod returns the 12-bit fixed-point maximum LOD clamp.
func (s Sampler) MaxLod() uint32 {
	return s[1] >> 12 & 0xFFF
}

// LodBias returns the 14-bit fixed-point LOD bias.
func (s Sampler) LodBias() uint32 {
	return s[2] & 0x3FFF
}
