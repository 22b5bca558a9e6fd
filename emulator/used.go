package emulator

import (
	"maps"
	"slices"
)

// UsedRegisters collects the registers referenced by executed instructions.
type UsedRegisters map[int]bool

// Add records register indices.
func (used UsedRegisters) Add(indices ...int) {
	for _, index := range indices {
		used[index] = true
	}
}

// Sorted returns the recorded registers in ascending order.
func (used UsedRegisters) Sorted() (regs []int) {
	regs = slices.Sorted(maps.Keys(used))
	if regs == nil {
		regs = []int{}
	}
	return
}
