package emulator

import (
	"errors"

	"github.com/ezrec/mipslet/translate"
)

var f = translate.From

// ErrRuntime indicates the program line of a runtime error.
type ErrRuntime struct {
	Line int // Program line index, 0-based.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// Diagnostic returns the user-visible message of a run error, without the
// line information. A nil error has an empty diagnostic.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	var rt *ErrRuntime
	if errors.As(err, &rt) {
		return rt.Err.Error()
	}

	return err.Error()
}
