package cpu

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	for n := range REGISTER_COUNT {
		assert.Equal(0, rf.Read(n))
	}

	assert.NoError(rf.Write(1, 10))
	assert.NoError(rf.Write(31, -5))
	assert.Equal(10, rf.Read(1))
	assert.Equal(-5, rf.Read(31))

	// Out of range reads are zero.
	assert.Equal(0, rf.Read(-1))
	assert.Equal(0, rf.Read(REGISTER_COUNT))

	rf.Reset()
	assert.Equal(0, rf.Read(1))
	assert.Equal(0, rf.Read(31))
}

func TestRegisterFile_Write(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		index int
		value int
		err   error
	}){
		{"zero", 0, 1, ErrCannotAssignZero},
		{"zero_zero", 0, 0, ErrCannotAssignZero},
		{"negative", -1, 1, ErrInvalidRegister},
		{"past_end", REGISTER_COUNT, 1, ErrInvalidRegister},
		{"max", 1, math.MaxInt32, nil},
		{"min", 1, math.MinInt32, nil},
		{"over", 1, math.MaxInt32 + 1, ErrOutOfBounds},
		{"under", 1, math.MinInt32 - 1, ErrOutOfBounds},
	}

	for _, entry := range table {
		rf := &RegisterFile{}
		err := rf.Write(entry.index, entry.value)
		if entry.err == nil {
			assert.NoError(err, entry.name)
			assert.Equal(entry.value, rf.Read(entry.index), entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
			assert.Equal(RegisterFile{}, *rf, entry.name)
		}
	}
}

func TestRegisterFile_Snapshot(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	assert.NoError(rf.Write(7, 42))

	snap := rf.Snapshot()
	assert.Len(snap, REGISTER_COUNT)
	assert.Equal(42, snap[7])
	assert.Equal(0, snap[0])

	// The snapshot is a copy.
	snap[7] = 0
	assert.Equal(42, rf.Read(7))
}

func TestRegisterFile_String(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	assert.NoError(rf.Write(5, 123))

	text := rf.String()
	assert.Equal(REGISTER_COUNT/4, strings.Count(text, "\n"))
	assert.Contains(text, "$5:         123")
	assert.Contains(text, "$31:           0")
}
