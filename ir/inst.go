package ir

import "fmt"

// Inst is a single instruction in the graph. Instructions are owned by
// a Program arena and mutated in place by rewriting passes; they are
// never copied, so identity is the handle, not the contents.
type Inst struct {
	// Op is the operation this instruction performs.
	Op Opcode

	args  []Value
	flags uint32
}

// NumArgs returns the operand count.
func (i *Inst) NumArgs() int {
	return len(i.args)
}

// Arg returns operand n.
func (i *Inst) Arg(n int) Value {
	return i.args[n]
}

// SetArg replaces operand n in place.
func (i *Inst) SetArg(n int, v Value) {
	i.args[n] = v
}

// Flags returns the raw per-opcode flags payload.
func (i *Inst) Flags() uint32 {
	return i.flags
}

// SetFlags replaces the raw flags payload.
func (i *Inst) SetFlags(f uint32) {
	i.flags = f
}

// BufferInfo interprets the flags payload as buffer access metadata.
func (i *Inst) BufferInfo() BufferInstInfo {
	return BufferInstInfo(i.flags)
}

// TextureInfo interprets the flags payload as image access metadata.
func (i *Inst) TextureInfo() TextureInstInfo {
	return TextureInstInfo(i.flags)
}

// String returns a one-line printable form of the instruction.
func (i *Inst) String() string {
	s := i.Op.String()
	for _, a := range i.args {
		s += " " + a.String()
	}
	if i.flags != 0 {
		s += fmt.Sprintf(" [flags %#x]", i.flags)
	}
	return s
}
