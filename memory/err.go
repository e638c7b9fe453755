package memory

import (
	"errors"

	"github.com/micah-mips/micah/translate"
)

var f = translate.From

var (
	// Memory faults
	ErrNullAccess    = errors.New(f("null access"))
	ErrOverflow      = errors.New(f("overflow access"))
	ErrPageFault     = errors.New(f("page fault"))
	ErrInvalidMemory = errors.New(f("invalid memory"))
)

// ErrFault records the address of a failed memory access.
type ErrFault struct {
	Addr uint32
	Err  error
}

func (err *ErrFault) Error() string {
	return f("address 0x%08x %v", err.Addr, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
