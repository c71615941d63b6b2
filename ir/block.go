package ir

// Block is a basic block: a mutable ordered list of instruction
// handles. Control-flow edges are implicit in the reverse-post-order
// block sequence of the owning Program; rewriting passes only need the
// instruction list.
type Block struct {
	insts []InstHandle
}

// Len returns the number of instructions in the block.
func (b *Block) Len() int {
	return len(b.insts)
}

// At returns the handle of the instruction at position n.
func (b *Block) At(n int) InstHandle {
	return b.insts[n]
}

// Instructions returns the block's handle list. The slice is owned by
// the block; callers that mutate the block while iterating should
// index through At instead.
func (b *Block) Instructions() []InstHandle {
	return b.insts
}

// append adds an instruction at the end of the block.
func (b *Block) append(h InstHandle) {
	b.insts = append(b.insts, h)
}

// insert places an instruction at position n, shifting the rest down.
func (b *Block) insert(n int, h InstHandle) {
	b.insts = append(b.insts, 0)
	copy(b.insts[n+1:], b.insts[n:])
	b.insts[n] = h
}
