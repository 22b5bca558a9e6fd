// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"unicode"
	"unicode/utf8"
)

// Execute executes a single instruction against the register file.
//
// For beq and bne, taken is the branch condition. The caller resolves the
// jump target. A failing instruction leaves the register file unchanged.
func Execute(ins Instruction, regs *RegisterFile) (taken bool, err error) {
	if ins.Unfilled() {
		err = ErrIncompleteDefinition
		return
	}

	if !ins.Kind.Valid() {
		err = ErrNonExecutable
		return
	}

	if len(ins.Operands) != ins.Arity() {
		err = ErrInvalidArity
		return
	}

	args := ins.Operands

	switch ins.Kind {
	case KIND_ADD, KIND_SUB:
		if isZero(args[0]) {
			err = ErrCannotAssignZero
			return
		}
		var target, a, b int
		target, a, b, err = registers3(args)
		if err != nil {
			return
		}
		value := regs.Read(a)
		if ins.Kind == KIND_ADD {
			value += regs.Read(b)
		} else {
			value -= regs.Read(b)
		}
		err = regs.Write(target, value)
	case KIND_LI:
		if isZero(args[0]) {
			err = ErrCannotAssignZero
			return
		}
		target, ok := args[0].Register()
		if !ok {
			err = ErrInvalidRegister
			return
		}
		value, ok := args[1].Int()
		if !ok {
			err = ErrOutOfBounds
			return
		}
		err = regs.Write(target, value)
	case KIND_LABEL:
		first, _ := utf8.DecodeRuneInString(string(args[0]))
		if len(args[0]) == 0 || !(unicode.IsLetter(first) || unicode.IsNumber(first)) {
			err = ErrInvalidLabel
			return
		}
	case KIND_BEQ, KIND_BNE:
		left, ok_left := args[0].Register()
		right, ok_right := args[1].Register()
		if !ok_left || !ok_right {
			err = ErrInvalidRegister
			return
		}
		taken = regs.Read(left) == regs.Read(right)
		if ins.Kind == KIND_BNE {
			taken = !taken
		}
	default:
		err = ErrNonExecutable
	}

	return
}

// isZero returns true if the operand names register 0.
func isZero(op Operand) bool {
	index, ok := op.Int()
	return ok && index == REGISTER_ZERO
}

// registers3 decodes a three register operand list.
func registers3(args []Operand) (target, a, b int, err error) {
	out := [3](*int){&target, &a, &b}
	for n, arg := range args {
		index, ok := arg.Register()
		if !ok {
			err = ErrInvalidRegister
			return
		}
		*out[n] = index
	}

	return
}
