package asm

import (
	"errors"

	"github.com/micah-mips/micah/translate"
)

var f = translate.From

var (
	// Tokenizer errors
	ErrQuoteUnterminated = errors.New(f("unterminated quote"))
	ErrEscapeDangling    = errors.New(f("escape at end of line"))

	// Program errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelEmpty     = errors.New(f("label empty"))
)

// ErrToken is a malformed token.
type ErrToken struct {
	Column int    // Byte offset of the token start.
	Token  string // Text of the malformed token.
	Err    error
}

func (err *ErrToken) Error() string {
	return f("column %d %v: %v", err.Column, err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrSyntax is a source line that could not be parsed.
type ErrSyntax struct {
	Location SourceLocation
	Err      error
}

func (err *ErrSyntax) Error() string {
	return f("%v '%v' %v", err.Location.Position(), err.Location.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
