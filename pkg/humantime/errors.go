package humantime

import (
	"errors"
	"fmt"
)

// Conversion errors.
var (
	ErrUnknownUnit = errors.New("unknown unit")
	ErrNegative    = errors.New("negative duration")
	ErrOutOfRange  = errors.New("value out of range")
)

// UnknownUnitError reports a number/unit pair whose unit letter is not in
// the table.
type UnknownUnitError struct {
	// Code is the unrecognized unit letter.
	Code byte

	// Text is the matched pair, e.g. "10x".
	Text string

	// Offset is the byte offset of the pair in the normalized input.
	Offset int
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%v %q in %q at offset %d", ErrUnknownUnit, string(e.Code), e.Text, e.Offset)
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// RangeError reports an input outside the accepted range.
type RangeError struct {
	// Op is the failing operation ("parse" or "format").
	Op string

	// Value is the offending input, as text.
	Value string

	Err error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Value, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }
