package cpu

// Kind is the instruction kind.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ADD   = Kind(0) // add
	KIND_SUB   = Kind(1) // sub
	KIND_LI    = Kind(2) // li
	KIND_LABEL = Kind(3) // label
	KIND_BEQ   = Kind(4) // beq
	KIND_BNE   = Kind(5) // bne
)

// Role is the operand role of an instruction slot.
type Role int

//go:generate go tool stringer -linecomment -type=Role
const (
	ROLE_REGISTER = Role(0) // register
	ROLE_VALUE    = Role(1) // value
	ROLE_NAME     = Role(2) // name
	ROLE_TARGET   = Role(3) // target
)

// kindInfo describes the operand layout of a Kind.
type kindInfo struct {
	roles       []Role
	help        []string
	description string
}

var kindTable = map[Kind]kindInfo{
	KIND_ADD: {
		roles:       []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_REGISTER},
		help:        []string{"$target", "$a", "$b"},
		description: "target = value of register a + value of register b",
	},
	KIND_SUB: {
		roles:       []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_REGISTER},
		help:        []string{"$target", "$a", "$b"},
		description: "target = value of register a - value of register b",
	},
	KIND_LI: {
		roles: []Role{ROLE_REGISTER, ROLE_VALUE},
		help:  []string{"$target", "value"},
		description: "li: Load Immediate\n" +
			"Loads the value into the target register.",
	},
	KIND_LABEL: {
		roles: []Role{ROLE_NAME},
		help:  []string{"name"},
		description: "label: Names this line.\n" +
			"A label must start with a letter or a digit. beq and bne jump\n" +
			"to the labelled line when given the label name as skip.",
	},
	KIND_BEQ: {
		roles: []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_TARGET},
		help:  []string{"$left", "$right", "skip"},
		description: "beq: Branch on Equal\n" +
			"if left == right, jump to the label named by skip, or\n" +
			"skip + 1 lines ahead (behind, if negative) when skip is a number.",
	},
	KIND_BNE: {
		roles: []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_TARGET},
		help:  []string{"$left", "$right", "skip"},
		description: "bne: Branch on Not Equal\n" +
			"if left != right, jump to the label named by skip, or\n" +
			"skip + 1 lines ahead (behind, if negative) when skip is a number.",
	},
}

// kindMap maps mnemonics to instruction kinds.
var kindMap = map[string]Kind{
	"add":   KIND_ADD,
	"sub":   KIND_SUB,
	"li":    KIND_LI,
	"label": KIND_LABEL,
	"beq":   KIND_BEQ,
	"bne":   KIND_BNE,
}

// Kinds lists every instruction kind, in encoding order.
func Kinds() []Kind {
	return []Kind{KIND_ADD, KIND_SUB, KIND_LI, KIND_LABEL, KIND_BEQ, KIND_BNE}
}

// Valid returns true if the kind is one of the defined instruction kinds.
func (kind Kind) Valid() bool {
	_, ok := kindTable[kind]
	return ok
}

// Arity returns the number of operands the kind requires.
func (kind Kind) Arity() int {
	return len(kindTable[kind].roles)
}

// Roles returns the operand role of each slot.
func (kind Kind) Roles() []Role {
	return kindTable[kind].roles
}

// Help returns the operand hint of each slot.
// Register slots are prefixed with '$'.
func (kind Kind) Help() []string {
	return kindTable[kind].help
}

// Description returns the help text for the kind.
func (kind Kind) Description() string {
	return kindTable[kind].description
}

// Branch returns true for conditional branches.
func (kind Kind) Branch() bool {
	return kind == KIND_BEQ || kind == KIND_BNE
}
