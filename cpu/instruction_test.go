package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		kind  Kind
		name  string
		arity int
		help  []string
	}){
		{KIND_ADD, "add", 3, []string{"$target", "$a", "$b"}},
		{KIND_SUB, "sub", 3, []string{"$target", "$a", "$b"}},
		{KIND_LI, "li", 2, []string{"$target", "value"}},
		{KIND_LABEL, "label", 1, []string{"name"}},
		{KIND_BEQ, "beq", 3, []string{"$left", "$right", "skip"}},
		{KIND_BNE, "bne", 3, []string{"$left", "$right", "skip"}},
	}

	assert.Equal(len(table), len(Kinds()))

	for _, entry := range table {
		kind := entry.kind
		assert.True(kind.Valid(), entry.name)
		assert.Equal(entry.name, kind.String())
		assert.Equal(entry.arity, kind.Arity(), entry.name)
		assert.Equal(entry.help, kind.Help(), entry.name)
		assert.Len(kind.Roles(), entry.arity, entry.name)
		assert.NotEmpty(kind.Description(), entry.name)
		assert.Equal(kind, kindMap[entry.name])

		// Register hints and register roles agree.
		for n, help := range kind.Help() {
			assert.Equal(help[0] == '$', kind.Roles()[n] == ROLE_REGISTER, entry.name)
		}
	}

	bad := Kind(99)
	assert.False(bad.Valid())
	assert.Equal(0, bad.Arity())
	assert.Equal("Kind(99)", bad.String())
}

func TestOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Operand
		value    int
		isInt    bool
		register int
		isReg    bool
	}){
		{"0", 0, true, 0, true},
		{"31", 31, true, 31, true},
		{"32", 32, true, 0, false},
		{"-1", -1, true, 0, false},
		{"+5", 5, true, 5, true},
		{"end", 0, false, 0, false},
		{"", 0, false, 0, false},
	}

	for _, entry := range table {
		value, ok := entry.op.Int()
		assert.Equal(entry.isInt, ok, string(entry.op))
		if ok {
			assert.Equal(entry.value, value, string(entry.op))
		}
		reg, ok := entry.op.Register()
		assert.Equal(entry.isReg, ok, string(entry.op))
		if ok {
			assert.Equal(entry.register, reg, string(entry.op))
		}
	}

	assert.Equal(Operand("12"), Reg(12))
	assert.Equal(Operand("-3"), Imm(-3))
	assert.Equal(Operand("loop"), Name("loop"))
}

func TestInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins       Instruction
		text      string
		complete  bool
		registers []int
	}){
		{Add(3, 1, 2), "add $3, $1, $2", true, []int{3, 1, 2}},
		{Sub(3, 3, 3), "sub $3, $3, $3", true, []int{3, 3, 3}},
		{Li(1, -7), "li $1, -7", true, []int{1}},
		{Label("top"), "label top", true, nil},
		{Beq(15, 5, Name("end")), "beq $15, $5, end", true, []int{15, 5}},
		{Bne(0, 1, Imm(-2)), "bne $0, $1, -2", true, []int{0, 1}},
		{NewInstruction(KIND_ADD), "add", false, nil},
		{NewInstruction(KIND_ADD, Reg(1)), "add $1", false, []int{1}},
		{NewInstruction(KIND_ADD, Reg(40), Reg(1), Reg(2)), "add $40, $1, $2", true, []int{1, 2}},
	}

	for _, entry := range table {
		ins := entry.ins
		assert.Equal(entry.text, ins.String())
		assert.Equal(entry.complete, ins.Complete(), entry.text)
		assert.Equal(entry.registers, ins.Registers(), entry.text)
		assert.Equal(ins.Kind.String(), ins.Name())
		assert.Equal(ins.Kind.Arity(), ins.Arity())
	}

	assert.True(NewInstruction(KIND_LABEL).Unfilled())
	assert.False(Label("x").Unfilled())
}

func TestInstruction_Target(t *testing.T) {
	assert := assert.New(t)

	target, ok := Beq(1, 2, Name("end")).Target()
	assert.True(ok)
	assert.Equal(Name("end"), target)

	target, ok = Bne(1, 2, Imm(3)).Target()
	assert.True(ok)
	assert.Equal(Imm(3), target)

	_, ok = Add(1, 2, 3).Target()
	assert.False(ok)

	_, ok = NewInstruction(KIND_BEQ).Target()
	assert.False(ok)
}
