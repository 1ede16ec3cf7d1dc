package cli

import (
	"errors"
	"fmt"

	"personas/internal/dto"
	"personas/internal/service"
)

const (
	ExitCodeGeneric  = 1
	ExitCodeUsage    = 2
	ExitCodeNotFound = 3
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ExitError) ExitCode() int {
	if e == nil {
		return ExitCodeGeneric
	}
	return e.Code
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf(format, args...)}
}

// mapCommandError assigns an exit code to a service error.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrPersonaNoEncontrada) {
		return &ExitError{Code: ExitCodeNotFound, Err: err}
	}
	return &ExitError{Code: ExitCodeGeneric, Err: err}
}

// validationError renders validator failures as a usage error.
func validationError(err error) error {
	fields := dto.FieldErrors(err)
	if len(fields) == 0 {
		return usageErrorf("%v", err)
	}
	return usageErrorf("validación fallida: %v", fields)
}
