package cpu

import (
	"errors"

	"github.com/micah-mips/micah/translate"
)

var f = translate.From

var (
	// Register errors
	ErrWriteRejected = errors.New(f("write rejected"))
)

// ErrRegisterWrite is a rejected register write.
type ErrRegisterWrite struct {
	Register Register
	Err      error
}

func (err *ErrRegisterWrite) Error() string {
	return f("register $%v %v", err.Register, err.Err)
}

func (err *ErrRegisterWrite) Unwrap() error {
	return err.Err
}
