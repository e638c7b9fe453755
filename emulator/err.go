package emulator

import (
	"errors"

	"github.com/micah-mips/micah/asm"
	"github.com/micah-mips/micah/translate"
)

var f = translate.From

var (
	// Dispatch errors
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Location asm.SourceLocation
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("%v '%v' %v", err.Location.Position(), err.Location.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
