// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var _cpu_defines = map[string]string{
	"REGISTERS": fmt.Sprintf("%v", REGISTER_COUNT),
	"ZERO":      fmt.Sprintf("$%v", REGISTER_ZERO),
}

// Defines returns the equates describing the instruction set.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler translates source text into a Program.
//
// Each source line holds at most one instruction, optionally preceded by
// 'name:' label declarations and a '-' retraction mark:
//
//	.equ STEP 1
//	        li $1, STEP
//	loop:   add $2, $2, $1
//	        bne $2, $3, loop
//	-       sub $2, $2, $1      ; retracted
//
// Numbers are decimal, 0x hexadecimal, 0o octal, or 0b binary.
// $(expr) is replaced by the integer value of a Starlark expression, in
// which integer equates are visible.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
	prog      *Program          // Program being assembled.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, err := asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or label names.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	parenRe = regexp.MustCompile(`\$\([^\$]*\)`)
)

// splitWords splits on whitespace and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseLine evaluates expressions and equates, and splits a line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.prog = &Program{}
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _cpu_defines)
	maps.Copy(asm.Equate, asm.predefine)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.prog

	return
}

// emit appends an instruction to the program being assembled.
func (asm *Assembler) emit(ins Instruction, lineno int, words []string, retracted bool) {
	line := len(asm.prog.Lines)
	asm.prog.Lines = append(asm.prog.Lines, ins)
	asm.prog.Source = append(asm.prog.Source, Source{LineNo: lineno, Words: slices.Clone(words)})
	if retracted {
		_ = asm.prog.Retract(line)
	}

	if asm.Verbose {
		log.Printf("%03d: %v", line, ins)
	}
}

// operand converts a word to an operand for the given role.
func (asm *Assembler) operand(role Role, word string) (op Operand, err error) {
	switch role {
	case ROLE_REGISTER:
		word = strings.TrimPrefix(word, "$")
		value, _err := asm.valueOf(word)
		if _err != nil {
			// Not a number. Execution reports the bad register.
			op = Operand(word)
			return
		}
		op = Operand(strconv.FormatInt(value, 10))
	case ROLE_VALUE:
		var value int64
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
		op = Operand(strconv.FormatInt(value, 10))
	case ROLE_TARGET:
		value, _err := asm.valueOf(word)
		if _err != nil {
			op = Name(word)
			return
		}
		op = Operand(strconv.FormatInt(value, 10))
	default:
		op = Name(word)
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	retracted := false
	if words[0] == "-" {
		retracted = true
		words = words[1:]
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		name := strings.TrimSuffix(words[0], ":")
		if len(name) == 0 {
			err = ErrLabelEmpty
			return
		}
		asm.emit(Label(name), lineno, words[:1], retracted)
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	kind, ok := kindMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	switch {
	case len(args) == 0:
		// Unfilled instruction.
	case len(args) > kind.Arity():
		err = ErrOpcodeExtraArgs
		return
	case len(args) < kind.Arity():
		err = ErrOpcodeValueMissing
		return
	}

	ins := NewInstruction(kind)
	roles := kind.Roles()
	for n, arg := range args {
		var op Operand
		op, err = asm.operand(roles[n], arg)
		if err != nil {
			return
		}
		ins.Operands = append(ins.Operands, op)
	}

	asm.emit(ins, lineno, words, retracted)

	return
}
