package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOneCalculator/shadPS4/ir"
)

func TestTrackSharpUserData(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	ud := p.Append(b, ir.OpGetUserData, ir.RegValue(6))

	loc, err := TrackSharp(p, ud)
	require.NoError(t, err)
	assert.Equal(t, SharpLocation{SgprBase: ir.NumScalarRegs, DwordOffset: 6}, loc)
}

func TestTrackSharpThroughPhiChain(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	ud := p.Append(b, ir.OpGetUserData, ir.RegValue(2))
	other := p.Append(b, ir.OpGetUserData, ir.RegValue(9))
	inner := p.Append(b, ir.OpPhi, ir.InstValue(ud), ir.InstValue(other))
	outer := p.Append(b, ir.OpPhi, ir.InstValue(inner), ir.InstValue(other))

	// Only operand 0 is followed; all edges converge on one location.
	loc, err := TrackSharp(p, outer)
	require.NoError(t, err)
	assert.Equal(t, SharpLocation{SgprBase: ir.NumScalarRegs, DwordOffset: 2}, loc)
}

func TestTrackSharpIndirect(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	lo := p.Append(b, ir.OpGetUserData, ir.RegValue(2))
	hi := p.Append(b, ir.OpGetUserData, ir.RegValue(3))
	base := p.Append(b, ir.OpCompositeConstructU32x2, ir.InstValue(lo), ir.InstValue(hi))
	read := p.Append(b, ir.OpReadConst, ir.InstValue(base), ir.Imm32(5))

	loc, err := TrackSharp(p, read)
	require.NoError(t, err)
	assert.Equal(t, SharpLocation{SgprBase: 2, DwordOffset: 5}, loc)
}

func TestTrackSharpIndirectThroughPhiBase(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	lo := p.Append(b, ir.OpGetUserData, ir.RegValue(4))
	hi := p.Append(b, ir.OpGetUserData, ir.RegValue(5))
	loPhi := p.Append(b, ir.OpPhi, ir.InstValue(lo))
	hiPhi := p.Append(b, ir.OpPhi, ir.InstValue(hi))
	base := p.Append(b, ir.OpCompositeConstructU32x2, ir.InstValue(loPhi), ir.InstValue(hiPhi))
	read := p.Append(b, ir.OpReadConst, ir.InstValue(base), ir.Imm32(12))

	loc, err := TrackSharp(p, read)
	require.NoError(t, err)
	assert.Equal(t, SharpLocation{SgprBase: 4, DwordOffset: 12}, loc)
}

func TestTrackSharpNestedIndirection(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	lo := p.Append(b, ir.OpGetUserData, ir.RegValue(2))
	hi := p.Append(b, ir.OpGetUserData, ir.RegValue(3))
	base := p.Append(b, ir.OpCompositeConstructU32x2, ir.InstValue(lo), ir.InstValue(hi))
	// The "pointer" registers are themselves loaded from memory:
	// unsupported nesting, must fail loudly.
	nestedLo := p.Append(b, ir.OpReadConst, ir.InstValue(base), ir.Imm32(0))
	nestedHi := p.Append(b, ir.OpReadConst, ir.InstValue(base), ir.Imm32(1))
	nestedBase := p.Append(b, ir.OpCompositeConstructU32x2, ir.InstValue(nestedLo), ir.InstValue(nestedHi))
	read := p.Append(b, ir.OpReadConst, ir.InstValue(nestedBase), ir.Imm32(4))

	_, err := TrackSharp(p, read)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "nested")
}

func TestTrackSharpRejectsOtherProducers(t *testing.T) {
	p := ir.NewProgram()
	b := p.NewBlock()
	add := p.Append(b, ir.OpIAdd32, ir.Imm32(1), ir.Imm32(2))

	_, err := TrackSharp(p, add)
	require.ErrorIs(t, err, ErrUnsupported)
}
