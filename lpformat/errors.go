package lpformat

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ways an LP document can be malformed. Every failure
// surfaced by the parser wraps one of these inside an *InputError, so callers
// can match with errors.Is.
var (
	ErrUnrecognizedDirection = errors.New("unrecognized optimization direction")
	ErrMissingSign           = errors.New("missing sign between addends")
	ErrInvalidAddend         = errors.New("invalid addend")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrMalformedConstraint   = errors.New("malformed constraint")
	ErrUnknownVariable       = errors.New("unknown variable")
	ErrMalformedBound        = errors.New("malformed bound")
	ErrUnknownBoundFormat    = errors.New("unknown bound format")
	ErrSectionOrder          = errors.New("unexpected section order")
	ErrIncompleteInput       = errors.New("incomplete input")
	ErrIO                    = errors.New("i/o failure")
)

// InputError is the single error type surfaced by the parser. It records the
// section being read and the physical line that triggered the failure.
type InputError struct {
	Section Section
	Line    int
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("line %d (section %s): %v", e.Line, e.Section, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
