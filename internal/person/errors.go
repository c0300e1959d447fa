package person

import (
	"errors"
	"fmt"
)

// Error is returned when a field value or a derived computation violates
// one of the person rules.
//
// The previous state of the entity is never modified when an Error is
// returned.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Field names the offending field ("name", "age", "curp", ...).
	Field string

	// Message is a human-readable description.
	Message string
}

// Code categorizes person errors.
type Code string

const (
	// CodeInvalidArgument marks a rejected field value or input string.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeArithmetic marks a computation that cannot be carried out,
	// such as a BMI with a zero height.
	CodeArithmetic Code = "ARITHMETIC"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidArgument creates an Error with CodeInvalidArgument.
func NewInvalidArgument(field, message string) *Error {
	return &Error{Code: CodeInvalidArgument, Field: field, Message: message}
}

// Sentinel errors. Compare with errors.Is.
var (
	ErrNameRequired      = NewInvalidArgument("name", "a name must be provided")
	ErrNameFormat        = NewInvalidArgument("name", "invalid name; must start with a capital letter")
	ErrNegativeAge       = NewInvalidArgument("age", "age cannot be negative")
	ErrNegativeHeight    = NewInvalidArgument("height", "height cannot be less than zero")
	ErrNonPositiveWeight = NewInvalidArgument("weight", "weight cannot be negative or zero")
	ErrBirthDateFormat   = NewInvalidArgument("birth_date", "birth date must use the dd/mm/yyyy format")
	ErrFutureBirthDate   = NewInvalidArgument("birth_date", "birth date cannot be in the future")

	ErrZeroHeight = &Error{Code: CodeArithmetic, Field: "height", Message: "cannot divide by zero height"}
)

// IsInvalidArgument reports whether err is an Error with CodeInvalidArgument.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == CodeInvalidArgument
	}
	return false
}

// IsArithmetic reports whether err is an Error with CodeArithmetic.
func IsArithmetic(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == CodeArithmetic
	}
	return false
}

// Message returns the bare message of a person Error, or err.Error()
// for any other error.
func Message(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
