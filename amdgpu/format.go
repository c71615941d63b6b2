package amdgpu

// DataFormat is the hardware data format field of a buffer or image
// descriptor. Values are the raw GCN encodings.
type DataFormat uint32

const (
	FormatInvalid     DataFormat = 0
	Format8           DataFormat = 1
	Format16          DataFormat = 2
	Format8_8         DataFormat = 3
	Format32          DataFormat = 4
	Format16_16       DataFormat = 5
	Format10_11_11    DataFormat = 6
	Format11_11_10    DataFormat = 7
	Format10_10_10_2  DataFormat = 8
	Format2_10_10_10  DataFormat = 9
	Format8_8_8_8     DataFormat = 10
	Format32_32       DataFormat = 11
	Format16_16_16_16 DataFormat = 12
	Format32_32_32    DataFormat = 13
	Format32_32_32_32 DataFormat = 14
)

// NumberFormat is the hardware numeric interpretation of texel or
// buffer element data.
type NumberFormat uint32

const (
	NumberUnorm   NumberFormat = 0
	NumberSnorm   NumberFormat = 1
	NumberUscaled NumberFormat = 2
	NumberSscaled NumberFormat = 3
	NumberUint    NumberFormat = 4
	NumberSint    NumberFormat = 5
	NumberSnormNz NumberFormat = 6
	NumberFloat   NumberFormat = 7
	NumberSrgb    NumberFormat = 9
	NumberUbnorm  NumberFormat = 10
)

// String returns a short lowercase name for the number format.
func (n NumberFormat) String() string {
	switch n {
	case NumberUnorm:
		return "unorm"
	case NumberSnorm:
		return "snorm"
	case NumberUscaled:
		return "uscaled"
	case NumberSscaled:
		return "sscaled"
	case NumberUint:
		return "uint"
	case NumberSint:
		return "sint"
	case NumberSnormNz:
		return "snorm_nz"
	case NumberFloat:
		return "float"
	case NumberSrgb:
		return "srgb"
	case NumberUbnorm:
		return "ubnorm"
	default:
		return "unknown"
	}
}

// ImageType is the resource type field of a T# descriptor.
// Values are the raw hardware encodings; 1..7 are reserved.
type ImageType uint32

const (
	ImageBuffer      ImageType = 0
	Image1D          ImageType = 8
	Image2D          ImageType = 9
	Image3D          ImageType = 10
	ImageCube        ImageType = 11
	Image1DArray     ImageType = 12
	Image2DArray     ImageType = 13
	Image2DMsaa      ImageType = 14
	Image2DMsaaArray ImageType = 15
)

// String returns a short name for the image type.
func (t ImageType) String() string {
	switch t {
	case ImageBuffer:
		return "buffer"
	case Image1D:
		return "1d"
	case Image2D:
		return "2d"
	case Image3D:
		return "3d"
	case ImageCube:
		return "cube"
	case Image1DArray:
		return "1d_array"
	case Image2DArray:
		return "2d_array"
	case Image2DMsaa:
		return "2d_msaa"
	case Image2DMsaaArray:
		return "2d_msaa_array"
	default:
		return "invalid"
	}
}
