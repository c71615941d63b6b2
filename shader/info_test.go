package shader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOneCalculator/shadPS4/amdgpu"
	"github.com/ThatOneCalculator/shadPS4/ir"
)

// sliceMemory serves constant-memory reads from an in-memory dword
// slice starting at base.
type sliceMemory struct {
	base  uint64
	words []uint32
}

func (m *sliceMemory) ReadDwords(addr uint64, dst []uint32) error {
	if addr < m.base || addr%4 != 0 {
		return fmt.Errorf("unmapped read at %#x", addr)
	}
	start := (addr - m.base) / 4
	if int(start)+len(dst) > len(m.words) {
		return fmt.Errorf("read of %d dwords at %#x past end", len(dst), addr)
	}
	copy(dst, m.words[start:])
	return nil
}

func TestStageNames(t *testing.T) {
	names := map[Stage]string{
		StageVertex:              "vs",
		StageTessellationControl: "tc",
		StageTessellationEval:    "te",
		StageGeometry:            "gs",
		StageFragment:            "fs",
		StageCompute:             "cs",
		Stage(17):                "??",
	}
	for stage, want := range names {
		assert.Equal(t, want, stage.String())
	}
}

func TestReadUdDirect(t *testing.T) {
	info := &Info{}
	for n := range info.UserData {
		info.UserData[n] = uint32(0x100 + n)
	}

	var words [4]uint32
	require.NoError(t, info.ReadUd(ir.NumScalarRegs, 4, words[:]))
	assert.Equal(t, [4]uint32{0x104, 0x105, 0x106, 0x107}, words)
}

func TestReadUdDirectOutOfWindow(t *testing.T) {
	info := &Info{}
	var words [4]uint32
	require.Error(t, info.ReadUd(ir.NumScalarRegs, 14, words[:]))
}

func TestReadUdIndirect(t *testing.T) {
	const tableAddr = 0x8000
	mem := &sliceMemory{base: tableAddr, words: make([]uint32, 32)}
	for n := range mem.words {
		mem.words[n] = uint32(0xAB00 + n)
	}

	info := &Info{Mem: mem}
	// Register pair s2:s3 points at the descriptor table.
	info.UserData[2] = uint32(tableAddr)
	info.UserData[3] = 0

	var words [4]uint32
	require.NoError(t, info.ReadUd(2, 8, words[:]))
	assert.Equal(t, [4]uint32{0xAB08, 0xAB09, 0xAB0A, 0xAB0B}, words)
}

func TestReadUdIndirectNoMemory(t *testing.T) {
	info := &Info{}
	var words [4]uint32
	require.Error(t, info.ReadUd(2, 0, words[:]))
}

func TestReadBufferSharpFromWindow(t *testing.T) {
	sharp := amdgpu.BufferFromQwords(uint64(0x4000)|uint64(16)<<48, 128)
	info := &Info{}
	copy(info.UserData[8:], sharp[:])

	got, err := info.ReadBufferSharp(ir.NumScalarRegs, 8)
	require.NoError(t, err)
	assert.Equal(t, sharp, got)
	assert.Equal(t, uint32(16), got.Stride())
	assert.Equal(t, uint32(128), got.NumRecords())
}

func TestBufferResourceSharpPrefersInline(t *testing.T) {
	inline := amdgpu.BufferFromQwords(0x1040, uint64(64)<<32)
	res := &BufferResource{SgprBase: InlineSgprBase, InlineCbuf: inline}

	got, err := res.Sharp(&Info{})
	require.NoError(t, err)
	assert.Equal(t, inline, got)
}

func TestBufferResourceSharpFromLocation(t *testing.T) {
	sharp := amdgpu.BufferFromQwords(0x2000, 32)
	info := &Info{}
	copy(info.UserData[0:], sharp[:])

	res := &BufferResource{SgprBase: ir.NumScalarRegs, DwordOffset: 0}
	got, err := res.Sharp(info)
	require.NoError(t, err)
	assert.Equal(t, sharp, got)
}
