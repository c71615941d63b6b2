package ir

// Program is one shader program's instruction graph: an arena of
// instructions plus its basic blocks in reverse post order. The arena
// stores pointers so handles and *Inst references both stay valid as
// passes append replacement instructions.
type Program struct {
	// Blocks holds the basic blocks in reverse post order.
	Blocks []*Block

	insts []*Inst
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{}
}

// NewBlock appends a new empty basic block and returns it.
func (p *Program) NewBlock() *Block {
	b := &Block{}
	p.Blocks = append(p.Blocks, b)
	return b
}

// Inst resolves a handle to its instruction.
func (p *Program) Inst(h InstHandle) *Inst {
	return p.insts[h]
}

// NumInsts returns the arena size.
func (p *Program) NumInsts() int {
	return len(p.insts)
}

// alloc creates an instruction in the arena without placing it in a
// block.
func (p *Program) alloc(op Opcode, args ...Value) InstHandle {
	h := InstHandle(len(p.insts))
	p.insts = append(p.insts, &Inst{Op: op, args: args})
	return h
}

// Append creates an instruction and places it at the end of the block.
func (p *Program) Append(b *Block, op Opcode, args ...Value) InstHandle {
	h := p.alloc(op, args...)
	b.append(h)
	return h
}

// AppendWithFlags creates an instruction with a flags payload and
// places it at the end of the block.
func (p *Program) AppendWithFlags(b *Block, op Opcode, flags uint32, args ...Value) InstHandle {
	h := p.Append(b, op, args...)
	p.insts[h].flags = flags
	return h
}
