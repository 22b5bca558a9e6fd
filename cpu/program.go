package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/mipslet/internal"
)

// Source is the assembly source of a program line.
type Source struct {
	LineNo int      // Source line number, 1-based.
	Words  []string // Source words that produced the line.
}

// Program is an ordered list of instructions, indexed by line.
//
// Retracted lines are skipped by label collection and execution, but keep
// their index so no other line moves.
type Program struct {
	Lines     []Instruction
	Retracted map[int]bool
	Source    []Source // Optional. Parallel to Lines when assembled from text.
}

// Len returns the number of lines.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

func (prog *Program) valid(line int) (err error) {
	if line < 0 || line >= len(prog.Lines) {
		err = fmt.Errorf("%w: %d", ErrLineInvalid, line)
	}
	return
}

// Append adds instructions to the end of the program, and returns the line
// index of the first one.
func (prog *Program) Append(ins ...Instruction) (line int) {
	line = len(prog.Lines)
	prog.Lines = append(prog.Lines, ins...)
	if len(prog.Source) != 0 {
		for range ins {
			prog.Source = append(prog.Source, Source{})
		}
	}
	return
}

// Retract disables a line.
func (prog *Program) Retract(line int) (err error) {
	err = prog.valid(line)
	if err != nil {
		return
	}

	if prog.Retracted == nil {
		prog.Retracted = make(map[int]bool)
	}
	prog.Retracted[line] = true

	return
}

// Restore enables a retracted line.
func (prog *Program) Restore(line int) (err error) {
	err = prog.valid(line)
	if err != nil {
		return
	}

	delete(prog.Retracted, line)

	return
}

// IsRetracted returns true if the line is disabled.
func (prog *Program) IsRetracted(line int) bool {
	return prog.Retracted[line]
}

// Reset returns a line's instruction to the unfilled state.
func (prog *Program) Reset(line int) (err error) {
	err = prog.valid(line)
	if err != nil {
		return
	}

	prog.Lines[line].Operands = nil

	return
}

// Fill sets all the operands of a line's instruction.
func (prog *Program) Fill(line int, operands ...Operand) (err error) {
	err = prog.valid(line)
	if err != nil {
		return
	}

	ins := &prog.Lines[line]
	if len(operands) != ins.Arity() {
		err = ErrInvalidArity
		return
	}
	ins.Operands = slices.Clone(operands)

	return
}

// Clear removes all lines and retractions.
func (prog *Program) Clear() {
	prog.Lines = nil
	prog.Source = nil
	clear(prog.Retracted)
}

// Clone returns a deep copy of the program.
func (prog *Program) Clone() (clone *Program) {
	clone = &Program{
		Lines:     make([]Instruction, len(prog.Lines)),
		Retracted: maps.Clone(prog.Retracted),
		Source:    slices.Clone(prog.Source),
	}
	for n, ins := range prog.Lines {
		clone.Lines[n] = Instruction{Kind: ins.Kind, Operands: slices.Clone(ins.Operands)}
	}

	return
}

// All iterates over every line, retracted or not.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.Lines)
}

// Active iterates over the lines that are not retracted.
func (prog *Program) Active() iter.Seq2[int, Instruction] {
	return internal.Filter2(prog.All(), func(line int, _ Instruction) bool {
		return !prog.Retracted[line]
	})
}

// Debug returns the source of a line, if known.
func (prog *Program) Debug(line int) (src Source, ok bool) {
	if line < 0 || line >= len(prog.Source) {
		return
	}

	src = prog.Source[line]
	ok = src.LineNo != 0

	return
}

// String returns the program listing. Retracted lines are prefixed with '-'.
func (prog *Program) String() string {
	var text strings.Builder
	for line, ins := range prog.All() {
		mark := " "
		if prog.IsRetracted(line) {
			mark = "-"
		}
		fmt.Fprintf(&text, "%3d: %v %v\n", line, mark, ins)
	}

	return text.String()
}
