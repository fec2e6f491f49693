package reading

import (
	"errors"
	"fmt"
)

var (
	ErrParse            = errors.New("parse error")
	ErrEmptyInput       = errors.New("empty input")
	ErrNonPositiveValue = errors.New("non-positive value")
	ErrLengthMismatch   = errors.New("length mismatch")
)

type ParseError struct {
	Field Field
	Index int
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: value %d (%q) is not a number", e.Field, e.Index+1, e.Token)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

type EmptyInputError struct {
	Field Field
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no values entered", e.Field)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// NonPositiveValueError is also returned when a reciprocal conversion meets a zero.
type NonPositiveValueError struct {
	Field Field
	Index int
	Value float64
}

func (e *NonPositiveValueError) Error() string {
	return fmt.Sprintf("%s: value %d (%v) must be positive", e.Field, e.Index+1, e.Value)
}

func (e *NonPositiveValueError) Is(target error) bool {
	return target == ErrNonPositiveValue
}

type LengthMismatchError struct {
	XLen int
	YLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("got %d x values and %d y values, the counts should be the same", e.XLen, e.YLen)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// IsValidationError reports whether err rejects user input rather than a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNonPositiveValue) || errors.Is(err, ErrLengthMismatch)
}
