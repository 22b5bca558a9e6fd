package cpu

import (
	"fmt"
	"math"
	"strings"
)

const (
	REGISTER_COUNT = 32 // Number of registers.
	REGISTER_ZERO  = 0  // Reserved register, never written.
)

// RegisterFile is the register bank. All registers start at zero.
type RegisterFile struct {
	Register [REGISTER_COUNT]int32
}

// Read returns the value of a register. Indices outside the register file
// read as zero.
func (rf *RegisterFile) Read(index int) int {
	if index < 0 || index >= REGISTER_COUNT {
		return 0
	}

	return int(rf.Register[index])
}

// Write sets the value of a register.
// Register 0 is never written.
func (rf *RegisterFile) Write(index int, value int) (err error) {
	switch {
	case index == REGISTER_ZERO:
		err = ErrCannotAssignZero
	case index < 0 || index >= REGISTER_COUNT:
		err = ErrInvalidRegister
	case value < math.MinInt32 || value > math.MaxInt32:
		err = ErrOutOfBounds
	default:
		rf.Register[index] = int32(value)
	}

	return
}

// Reset zeros all registers.
func (rf *RegisterFile) Reset() {
	clear(rf.Register[:])
}

// Snapshot returns a copy of every register, by index.
func (rf *RegisterFile) Snapshot() (regs map[int]int) {
	regs = make(map[int]int, REGISTER_COUNT)
	for n, value := range rf.Register {
		regs[n] = int(value)
	}

	return
}

// String returns the register file as a table, four registers per line.
func (rf *RegisterFile) String() string {
	var text strings.Builder
	for n, value := range rf.Register {
		fmt.Fprintf(&text, "%4s: %11d", fmt.Sprintf("$%d", n), value)
		if n%4 == 3 {
			text.WriteString("\n")
		} else {
			text.WriteString("  ")
		}
	}

	return text.String()
}
