package vm

import (
	"errors"

	"github.com/gox16/gox16/translate"
)

var f = translate.From

var (
	ErrHalted         = errors.New(f("halted"))
	ErrIllegalOpcode  = errors.New(f("illegal opcode"))
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrTruncatedImage = errors.New(f("image is not a whole number of words"))
)

// ErrRuntime locates a fault by the address of the faulting instruction.
type ErrRuntime struct {
	PC  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("P%03d: %v", err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
