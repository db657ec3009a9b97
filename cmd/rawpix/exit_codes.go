package main

const (
	ExitCodeUnknownError     = 1
	ExitCodeInvalidArguments = 2
	ExitCodeInvalidInput     = 3
	ExitCodeInvalidOutput    = 4
	ExitCodeTransformError   = 5
)

// ExitCodeError carries the process exit code for an error.
type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}
