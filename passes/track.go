package passes

import (
	"fmt"

	"github.com/ThatOneCalculator/shadPS4/ir"
)

// SharpLocation names where a resource descriptor lives: in the
// user-data register window when SgprBase is ir.NumScalarRegs, or at
// DwordOffset dwords past the pointer held in the register pair
// starting at SgprBase.
type SharpLocation struct {
	SgprBase    uint32
	DwordOffset uint32
}

// skipPhis walks through Phi chains along operand 0. Every incoming
// edge of a Phi created over a descriptor handle converges on the same
// location, so inspecting one predecessor suffices.
func skipPhis(p *ir.Program, h ir.InstHandle) (ir.InstHandle, error) {
	for p.Inst(h).Op == ir.OpPhi {
		next, ok := p.Inst(h).Arg(0).TryInst()
		if !ok {
			return ir.InvalidInst, fmt.Errorf("%w: phi operand is not an instruction", ErrUnsupported)
		}
		h = next
	}
	return h, nil
}

// TrackSharp walks backward from a descriptor handle producer to the
// location of the underlying sharp. It is a pure analysis; the graph
// is not modified.
func TrackSharp(p *ir.Program, h ir.InstHandle) (SharpLocation, error) {
	h, err := skipPhis(p, h)
	if err != nil {
		return SharpLocation{}, err
	}
	inst := p.Inst(h)
	if inst.Op == ir.OpGetUserData {
		return SharpLocation{
			SgprBase:    ir.NumScalarRegs,
			DwordOffset: uint32(inst.Arg(0).Reg()),
		}, nil
	}
	if inst.Op != ir.OpReadConst {
		return SharpLocation{}, fmt.Errorf("%w: sharp load not from constant memory (%s)", ErrUnsupported, inst.Op)
	}

	// Retrieve the offset from the base.
	dwordOffset := inst.Arg(1).U32()
	baseH, ok := inst.Arg(0).TryInst()
	if !ok {
		return SharpLocation{}, fmt.Errorf("%w: constant read base is not an instruction", ErrUnsupported)
	}
	base := p.Inst(baseH)
	if base.NumArgs() < 2 {
		return SharpLocation{}, fmt.Errorf("%w: constant read base is not a register pair", ErrUnsupported)
	}

	// Retrieve the SGPR pair that holds the table pointer.
	sbase0H, ok0 := base.Arg(0).TryInst()
	sbase1H, ok1 := base.Arg(1).TryInst()
	if !ok0 || !ok1 {
		return SharpLocation{}, fmt.Errorf("%w: constant read base is not a register pair", ErrUnsupported)
	}
	if sbase0H, err = skipPhis(p, sbase0H); err != nil {
		return SharpLocation{}, err
	}
	if sbase1H, err = skipPhis(p, sbase1H); err != nil {
		return SharpLocation{}, err
	}
	sbase0 := p.Inst(sbase0H)
	sbase1 := p.Inst(sbase1H)
	if sbase0.Op != ir.OpGetUserData || sbase1.Op != ir.OpGetUserData {
		return SharpLocation{}, fmt.Errorf("%w: nested resource loads not supported", ErrUnsupported)
	}
	return SharpLocation{
		SgprBase:    uint32(sbase0.Arg(0).Reg()),
		DwordOffset: dwordOffset,
	}, nil
}
