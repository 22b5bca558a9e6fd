package emulator

import (
	"github.com/ezrec/mipslet/cpu"
)

// Labels maps label names to program lines.
type Labels map[string]int

// BuildLabels collects the labels of all lines that are not retracted.
//
// An unfilled label or a name declared twice fails the whole table.
func BuildLabels(prog *cpu.Program) (labels Labels, err error) {
	labels = make(Labels)

	for line, ins := range prog.Active() {
		if ins.Kind != cpu.KIND_LABEL {
			continue
		}

		if ins.Unfilled() {
			err = &ErrRuntime{Line: line, Err: cpu.ErrIncompleteDefinition}
			return nil, err
		}

		name := string(ins.Operands[0])
		if _, ok := labels[name]; ok {
			err = &ErrRuntime{Line: line, Err: cpu.ErrDuplicateLabel}
			return nil, err
		}

		labels[name] = line
	}

	return
}

// Lookup returns the line of a label.
func (labels Labels) Lookup(name string) (line int, err error) {
	line, ok := labels[name]
	if !ok {
		err = cpu.ErrLabelMissing(name)
	}

	return
}
