// internal/app/errors.go
package app

import (
	"fmt"

	"g4diff/internal/exitcode"
)

// ExitError carries the process exit status a failure maps to. Configuration
// problems abort with a distinct code from validation findings so report
// consumers can script against the difference.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func configErr(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: exitcode.Config, Err: err}
}

func configf(format string, args ...any) error {
	return &ExitError{Code: exitcode.Config, Err: fmt.Errorf(format, args...)}
}

func validationf(format string, args ...any) error {
	return &ExitError{Code: exitcode.Validation, Err: fmt.Errorf(format, args...)}
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: exitcode.Write, Err: err}
}
