package cli

import (
	"errors"
	"io/fs"

	"github.com/roach88/padron/internal/person"
)

// failDomain reports a person/citizen rule violation and returns an
// ExitFailure error carrying it.
func failDomain(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	switch {
	case person.IsInvalidArgument(err):
		code = ErrCodeInvalidArgument
	case person.IsArithmetic(err):
		code = ErrCodeArithmetic
	}

	var details any
	var pe *person.Error
	if errors.As(err, &pe) {
		details = map[string]string{"field": pe.Field, "kind": string(pe.Code)}
	}

	_ = f.Error(code, person.Message(err), details)
	return WrapExitError(ExitFailure, code, err)
}

// failLoad reports a file that could not be read or parsed and returns an
// ExitCommandError error.
func failLoad(f *OutputFormatter, err error, details any) error {
	code := ErrCodeLoadFailed
	if errors.Is(err, fs.ErrNotExist) {
		code = ErrCodeNotFound
	}
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(ExitCommandError, code, err)
}
