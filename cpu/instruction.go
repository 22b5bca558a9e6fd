// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strconv"
	"strings"
)

// Operand is a single instruction operand: a register index, an integer
// literal, or a label name.
type Operand string

// Reg makes a register operand.
func Reg(index int) Operand {
	return Operand(strconv.Itoa(index))
}

// Imm makes an integer literal operand.
func Imm(value int) Operand {
	return Operand(strconv.Itoa(value))
}

// Name makes a label name operand.
func Name(name string) Operand {
	return Operand(name)
}

// Int returns the operand as a decimal integer.
func (op Operand) Int() (value int, ok bool) {
	value, err := strconv.Atoi(string(op))
	ok = err == nil
	return
}

// Register returns the register index named by the operand, if it is a
// valid register.
func (op Operand) Register() (index int, ok bool) {
	index, ok = op.Int()
	if ok && (index < 0 || index >= REGISTER_COUNT) {
		ok = false
	}
	return
}

// Instruction is a single program line.
//
// An instruction is either unfilled (no operands) or complete (one operand
// per slot of its kind).
type Instruction struct {
	Kind     Kind
	Operands []Operand
}

// NewInstruction makes an instruction. With no operands the instruction is
// unfilled.
func NewInstruction(kind Kind, operands ...Operand) Instruction {
	return Instruction{Kind: kind, Operands: operands}
}

// Add makes 'add $target, $a, $b'.
func Add(target, a, b int) Instruction {
	return NewInstruction(KIND_ADD, Reg(target), Reg(a), Reg(b))
}

// Sub makes 'sub $target, $a, $b'.
func Sub(target, a, b int) Instruction {
	return NewInstruction(KIND_SUB, Reg(target), Reg(a), Reg(b))
}

// Li makes 'li $target, value'.
func Li(target, value int) Instruction {
	return NewInstruction(KIND_LI, Reg(target), Imm(value))
}

// Label makes 'label name'.
func Label(name string) Instruction {
	return NewInstruction(KIND_LABEL, Name(name))
}

// Beq makes 'beq $left, $right, skip'.
func Beq(left, right int, skip Operand) Instruction {
	return NewInstruction(KIND_BEQ, Reg(left), Reg(right), skip)
}

// Bne makes 'bne $left, $right, skip'.
func Bne(left, right int, skip Operand) Instruction {
	return NewInstruction(KIND_BNE, Reg(left), Reg(right), skip)
}

func (ins Instruction) Name() string {
	return ins.Kind.String()
}

func (ins Instruction) Arity() int {
	return ins.Kind.Arity()
}

func (ins Instruction) Help() []string {
	return ins.Kind.Help()
}

func (ins Instruction) Description() string {
	return ins.Kind.Description()
}

// Unfilled returns true if no operands have been supplied.
func (ins Instruction) Unfilled() bool {
	return len(ins.Operands) == 0
}

// Complete returns true if every operand slot is filled.
func (ins Instruction) Complete() bool {
	return !ins.Unfilled() && len(ins.Operands) == ins.Arity()
}

// Target returns the final operand, which is the jump target of a branch.
func (ins Instruction) Target() (target Operand, ok bool) {
	if !ins.Kind.Branch() || !ins.Complete() {
		return
	}

	return ins.Operands[len(ins.Operands)-1], true
}

// Registers returns the register indices referenced by register-role operands.
func (ins Instruction) Registers() (regs []int) {
	roles := ins.Kind.Roles()
	for n, op := range ins.Operands {
		if n >= len(roles) || roles[n] != ROLE_REGISTER {
			continue
		}
		index, ok := op.Register()
		if ok {
			regs = append(regs, index)
		}
	}

	return
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	if ins.Unfilled() {
		return ins.Name()
	}

	roles := ins.Kind.Roles()
	args := make([]string, len(ins.Operands))
	for n, op := range ins.Operands {
		args[n] = string(op)
		if n < len(roles) && roles[n] == ROLE_REGISTER {
			args[n] = "$" + args[n]
		}
	}

	return ins.Name() + " " + strings.Join(args, ", ")
}
