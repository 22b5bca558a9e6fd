package cpu

import (
	"errors"

	"github.com/ezrec/mipslet/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrIncompleteDefinition = errors.New(f("Tried to execute instruction without completing definition"))
	ErrInvalidArity         = errors.New(f("Tried to execute instruction with incorrect number of arguments"))
	ErrInvalidRegister      = errors.New(f("Register does not exist"))
	ErrOutOfBounds          = errors.New(f("Number is out of bounds!"))
	ErrCannotAssignZero     = errors.New(f("Cannot assign $0! [Reserved Register]"))
	ErrInvalidLabel         = errors.New(f("Invalid Label!"))
	ErrDuplicateLabel       = errors.New(f("Label name already exists!"))
	ErrInfiniteLoop         = errors.New(f("Infinite loop detected"))
	ErrNonExecutable        = errors.New(f("Tried to execute an instruction that cannot be executed"))

	// Program editing errors
	ErrLineInvalid = errors.New(f("line invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelEmpty         = errors.New(f("label name missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrLabelMissing is raised when a branch names a label that is not declared.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("Label %v does not exist", string(el))
}

// Is matches any ErrLabelMissing, regardless of the label name.
func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber is raised when a word must be, but is not, an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is raised when a $(...) expression fails to evaluate
// to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
