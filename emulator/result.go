package emulator

// RunResult is the outcome of one assembly run.
type RunResult struct {
	Diagnostic string      `json:"diagnostic" yaml:"diagnostic"` // Empty when the program halted.
	Line       int         `json:"line" yaml:"line"`             // Failing program line, or -1.
	Registers  map[int]int `json:"registers" yaml:"registers"`   // Register file after the run.
	Used       []int       `json:"used" yaml:"used"`             // Sorted registers referenced by executed instructions.
	Steps      int         `json:"steps" yaml:"steps"`           // Steps counted against the step limit.

	Err error `json:"-" yaml:"-"` // Failure with line information, or nil.
}

// Halted returns true if the run ended without error.
func (result RunResult) Halted() bool {
	return result.Err == nil
}

// UsedRegisters returns the values of the used registers, by index.
func (result RunResult) UsedRegisters() (regs map[int]int) {
	regs = make(map[int]int, len(result.Used))
	for _, index := range result.Used {
		regs[index] = result.Registers[index]
	}

	return
}
