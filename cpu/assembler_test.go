package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) (prog *Program) {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("32", asm.Equate["REGISTERS"])
	assert.Equal("$0", asm.Equate["ZERO"])
}

func TestAssemblerInstructions(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"li $1, 1",
		"li $15 0",             // commas are optional
		"LI $5, 0x5",           // case insensitive, hex
		"label start",          //
		"beq $15, $5, end",     // label target
		"add $15, $15, $1",     //
		"bne $15, $5, start",   //
		"sub $2 , $2 ,$1",      // odd spacing
		"bne $1, $0, -3",       // relative target
		"end:",                 // label shorthand
		"\tli\t$3,\t0b101    ", // tabs
	}

	prog := assemble(t, program)

	expected := []Instruction{
		Li(1, 1),
		Li(15, 0),
		Li(5, 5),
		Label("start"),
		Beq(15, 5, Name("end")),
		Add(15, 15, 1),
		Bne(15, 5, Name("start")),
		Sub(2, 2, 1),
		Bne(1, 0, Imm(-3)),
		Label("end"),
		Li(3, 5),
	}

	assert.Equal(expected, prog.Lines)
	assert.Len(prog.Source, len(expected))
	for n := range expected {
		src, ok := prog.Debug(n)
		assert.True(ok)
		assert.Equal(n+1, src.LineNo)
	}
	assert.Empty(prog.Retracted)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"start: li $1, 1", // label + instruction
		"a: b: add $2, $2, $1",
		"; comment only",
		"",
		"- gone: li $3, 3 ; retracted",
	}

	prog := assemble(t, program)

	expected := []Instruction{
		Label("start"),
		Li(1, 1),
		Label("a"),
		Label("b"),
		Add(2, 2, 1),
		Label("gone"),
		Li(3, 3),
	}
	assert.Equal(expected, prog.Lines)

	src, ok := prog.Debug(1)
	assert.True(ok)
	assert.Equal(1, src.LineNo)
	assert.Equal([]string{"li", "$1", "1"}, src.Words)

	src, ok = prog.Debug(4)
	assert.True(ok)
	assert.Equal(2, src.LineNo)

	assert.False(prog.IsRetracted(4))
	assert.True(prog.IsRetracted(5))
	assert.True(prog.IsRetracted(6))
}

func TestAssemblerUnfilled(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, []string{"add", "label", "beq"})

	assert.Equal([]Instruction{
		NewInstruction(KIND_ADD),
		NewInstruction(KIND_LABEL),
		NewInstruction(KIND_BEQ),
	}, prog.Lines)
	for _, ins := range prog.Lines {
		assert.True(ins.Unfilled())
	}
}

func TestAssemblerOperands(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"add $32, $1, $x", // left for execution to reject
		"li $1, -0x10",
		"beq $1, $2, 0x2",
		"label 7up",
	}

	prog := assemble(t, program)

	assert.Equal([]Instruction{
		NewInstruction(KIND_ADD, Operand("32"), Operand("1"), Operand("x")),
		Li(1, -16),
		Beq(1, 2, Imm(2)),
		Label("7up"),
	}, prog.Lines)
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ ONE 1",
		".equ COUNTER $15",
		"li $1, ONE",
		"li COUNTER, $(ONE * 10 + 2)",
		".equ LIMIT $(REGISTERS - ONE)",
		"li $5, LIMIT",
		"li $6, $(LINENO * 100)",
		"add COUNTER, COUNTER, ZERO",
	}

	prog := assemble(t, program)

	assert.Equal([]Instruction{
		Li(1, 1),
		Li(15, 12),
		Li(5, 31),
		Li(6, 700),
		Add(15, 15, 0),
	}, prog.Lines)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("STEP_LIMIT", "100")
	asm.Predefine("BASE", "4")
	asm.Predefine("BASE", "8")

	prog, err := asm.Parse(strings.NewReader("li $1, $(STEP_LIMIT + BASE)"))
	assert.NoError(err)
	assert.Equal([]Instruction{Li(1, 108)}, prog.Lines)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"unknown", []string{"li $1, 1", "mul $1, $1, $1"}, 2, ErrInstructionInvalid},
		{"extra", []string{"li $1, 1, 2"}, 1, ErrOpcodeExtraArgs},
		{"missing", []string{"add $1, $2"}, 1, ErrOpcodeValueMissing},
		{"number", []string{"", "li $1, one"}, 2, ErrParseNumber("one")},
		{"equ_syntax", []string{".equ A"}, 1, ErrEquateSyntax},
		{"equ_dup", []string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{"label_empty", []string{": li $1, 1"}, 1, ErrLabelEmpty},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerExpressionError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("li $1, $(1 +)"))
	assert.Error(err)
	assert.ErrorIs(err, ErrParseExpression("1 +"))

	_, err = asm.Parse(strings.NewReader(`li $1, $("text")`))
	assert.ErrorIs(err, ErrParseExpression(`"text"`))
}

func TestAssemblerRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	prog.Append(
		Li(1, 1),
		Label("loop"),
		Add(2, 2, 1),
		Bne(2, 3, Name("loop")),
		Beq(2, 3, Imm(-4)),
		NewInstruction(KIND_SUB),
	)

	var lines []string
	for _, ins := range prog.Lines {
		lines = append(lines, ins.String())
	}

	again := assemble(t, lines)
	assert.Equal(prog.Lines, again.Lines)
}
