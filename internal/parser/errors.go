package parser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrUnrecognizedUnit  = errors.New("unrecognized unit")
	ErrMalformedExponent = errors.New("exponent is not a valid integer")
	ErrMalformedMantissa = errors.New("mantissa is not a valid positive number")
	ErrNoGrammarMatched  = errors.New("input matches no supported format")
)

// ParseError tags a failed parse with the reason and the original input.
// errors.Is matches against the sentinel reasons above.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
