// Package cpu implements the instruction set, register file, and text
// assembler for the mipslet machine.
//
// The machine has 32 signed 32-bit registers ($0-$31), where $0 is reserved
// and never written. Programs are lists of instructions, one per line: add,
// sub, li, label, beq, and bne. Branches jump either to a label or by a
// relative line offset.
//
// The assembler reads a line-oriented source text with equates and
// compile-time $(...) expression evaluation, and produces a Program.
package cpu
