// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mipslet/cpu"
	"github.com/ezrec/mipslet/internal"
)

const (
	STEP_LIMIT = 100 // Default ceiling on executed steps per run.
)

// State is the execution state of the emulator.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAILED  = State(2) // failed
)

// Emulator state. Program + register file + execution cursor.
//
// The program and register file belong to the caller, and persist across
// runs. Reset snapshots the program, so edits made while running are not
// seen until the next Reset.
type Emulator struct {
	Verbose   bool              // If set, enables verbose logging.
	Program   *cpu.Program      // Reference to the program to run.
	Registers *cpu.RegisterFile // Reference to the register file.
	StepLimit int               // Ceiling on executed steps. 0 selects STEP_LIMIT.

	State State // Current execution state.
	Pc    int   // Program counter, a line index.
	Steps int   // Steps executed since Reset.
	Err   error // Failure, when State is STATE_FAILED.

	program *cpu.Program  // Snapshot of Program taken by Reset.
	labels  Labels        // Label table built by Reset.
	used    UsedRegisters // Registers used since Reset.
}

// NewEmulator creates a new emulator, with an empty program and a zeroed
// register file.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:   &cpu.Program{},
		Registers: &cpu.RegisterFile{},
		StepLimit: STEP_LIMIT,
	}

	return
}

// Defines returns an iterator over all of the defines.
// STEP_LIMIT follows the configured StepLimit.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	limit := emu.StepLimit
	if limit <= 0 {
		limit = STEP_LIMIT
	}

	emulator_defines := map[string]string{
		"STEP_LIMIT": fmt.Sprintf("%v", limit),
	}

	return internal.Concat2(maps.All(emulator_defines), cpu.Defines())
}

// Labels returns the label table built by the last Reset.
func (emu *Emulator) Labels() Labels {
	return emu.labels
}

// Used returns the sorted registers used since the last Reset.
func (emu *Emulator) Used() []int {
	return emu.used.Sorted()
}

func (emu *Emulator) fail(err error) {
	emu.State = STATE_FAILED
	emu.Err = err

	if emu.Verbose {
		log.Printf("emulator: %v", err)
	}
}

// Reset prepares a new run: the diagnostic is cleared, the label table is
// rebuilt, and the cursor returns to line 0. The register file is not
// cleared.
//
// A label table failure leaves the emulator in STATE_FAILED, and is
// returned.
func (emu *Emulator) Reset() (err error) {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	if emu.StepLimit <= 0 {
		emu.StepLimit = STEP_LIMIT
	}

	emu.State = STATE_RUNNING
	emu.Pc = 0
	emu.Steps = 0
	emu.Err = nil
	emu.used = make(UsedRegisters)
	emu.program = emu.Program.Clone()

	emu.labels, err = BuildLabels(emu.program)
	if err != nil {
		emu.fail(err)
		return
	}

	return
}

// Tick performs a single step of the emulator. The first Tick after
// NewEmulator performs the Reset.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.program == nil {
		err = emu.Reset()
		if err != nil {
			done = true
			return
		}
	}

	switch emu.State {
	case STATE_HALTED:
		done = true
		return
	case STATE_FAILED:
		done = true
		err = emu.Err
		return
	}

	pc := emu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Line: pc, Err: err}
			emu.fail(err)
			done = true
		}
	}()

	if pc >= emu.program.Len() {
		emu.State = STATE_HALTED
		done = true
		if emu.Verbose {
			log.Printf("emulator: halted after %d steps", emu.Steps)
		}
		return
	}

	emu.Steps++
	if emu.Steps >= emu.StepLimit {
		err = cpu.ErrInfiniteLoop
		return
	}

	if emu.program.IsRetracted(pc) {
		emu.Pc = pc + 1
		return
	}

	ins := emu.program.Lines[pc]
	if emu.Verbose {
		log.Printf("%03d: %v", pc, ins)
	}

	taken, err := cpu.Execute(ins, emu.Registers)
	if err != nil {
		return
	}

	emu.used.Add(ins.Registers()...)

	next := pc + 1
	if taken {
		target, _ := ins.Target()
		offset, ok := target.Int()
		if ok {
			next = pc + offset + 1
		} else {
			next, err = emu.labels.Lookup(string(target))
			if err != nil {
				return
			}
		}
	}

	if next < 0 {
		err = cpu.ErrOutOfBounds
		return
	}

	emu.Pc = next

	return
}

// Run ticks until the emulator halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
	}

	return
}

// Assemble resets the emulator and runs the program to completion.
func (emu *Emulator) Assemble() (result RunResult) {
	err := emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	result = RunResult{
		Diagnostic: Diagnostic(err),
		Line:       -1,
		Registers:  emu.Registers.Snapshot(),
		Used:       emu.Used(),
		Steps:      emu.Steps,
		Err:        err,
	}

	var rt *ErrRuntime
	if errors.As(err, &rt) {
		result.Line = rt.Line
	}

	return
}

// Assemble runs a program against a register file, with the default step
// limit.
func Assemble(prog *cpu.Program, regs *cpu.RegisterFile) RunResult {
	emu := &Emulator{
		Program:   prog,
		Registers: regs,
		StepLimit: STEP_LIMIT,
	}

	return emu.Assemble()
}
