package asm

import (
	"errors"

	"github.com/gox16/gox16/translate"
)

var f = translate.From

var (
	ErrOperandCount    = errors.New(f("operand count mismatch"))
	ErrAddressingMode  = errors.New(f("unsupported addressing mode"))
	ErrProgramTooBig   = errors.New(f("program exceeds instruction capacity"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

type ErrInvalidRegister string

func (err ErrInvalidRegister) Error() string {
	return f("invalid register '%v'", string(err))
}

type ErrUndefinedLabel string

func (err ErrUndefinedLabel) Error() string {
	return f("undefined label '%v'", string(err))
}

type ErrInvalidLiteral string

func (err ErrInvalidLiteral) Error() string {
	return f("'%v' is not a decimal literal", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperandRange reports a value that does not fit its bit field.
type ErrOperandRange struct {
	Value int
	Limit int
}

func (err *ErrOperandRange) Error() string {
	return f("operand %v out of range (0-%v)", err.Value, err.Limit)
}

func (err *ErrOperandRange) Is(other error) bool {
	o, ok := other.(*ErrOperandRange)
	return ok && *err == *o
}

// ErrSyntax locates a source-level error by its 1-based line number.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEncode locates an encoding error by the address of the instruction
// being encoded, numbered as in the listing.
type ErrEncode struct {
	Addr int
	Line string
	Err  error
}

func (err *ErrEncode) Error() string {
	return f("L%03d '%v' %v", err.Addr, err.Line, err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}
