// Package amdgpu decodes GCN hardware resource descriptors ("sharps").
//
// A sharp is a fixed-size bit-packed record the GPU reads to address a
// resource: V# describes a buffer (128 bits), T# an image (256 bits) and
// S# a sampler (128 bits). Shaders receive sharps through the user-data
// register window or through tables in constant memory; the recompiler
// decodes them here to recover shape, format and addressing information.
//
// The accessors mirror the hardware register layout documented in the
// GCN3 ISA manual. Descriptors are plain dword arrays so they can be
// copied out of guest memory and compared by value.
package amdgpu
