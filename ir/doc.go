// Package ir defines the instruction graph the shader recompiler
// operates on.
//
// The graph is SSA-like: each instruction produces at most one value,
// operands are either immediates or references to producing
// instructions, and control-flow merges are expressed with Phi
// instructions. Instructions live in a per-program arena and are
// addressed by stable InstHandle indices, so identity is graph
// position rather than value and passes may mutate instructions in
// place without aliasing hazards.
//
// # Structure
//
//   - Program: the arena plus basic blocks in reverse post order
//   - Block: a mutable ordered list of instruction handles
//   - Inst: opcode, operand list and a packed per-opcode flags payload
//   - Value: an operand (immediate, scalar register, or handle)
//   - Emitter: synthesizes replacement sub-graphs ahead of a fixed
//     insertion point inside a block
//
// Translation from GCN microcode into this form, and code generation
// out of it, live in the surrounding stages; passes only analyze and
// rewrite.
package ir
