package bignum

import (
	"errors"
	"fmt"
)

// Error kinds returned by the library. Match them with errors.Is.
var (
	ErrParse          = errors.New("bignum: invalid syntax")
	ErrDivisionByZero = errors.New("bignum: division by zero")
	ErrDomain         = errors.New("bignum: argument out of domain")
	ErrConversion     = errors.New("bignum: value not representable")
)

// ParseError describes malformed textual input.
type ParseError struct {
	Input  string
	Radix  int
	Offset int // byte offset of the first offending character
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bignum: parsing %q in radix %d: %s at offset %d", e.Input, e.Radix, e.Reason, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ConversionError reports a narrowing conversion of a value outside the
// target's range or shape.
type ConversionError struct {
	Value string
	From  string
	To    string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("bignum: cannot convert %s %s to %s", e.From, e.Value, e.To)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

func domainError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}
