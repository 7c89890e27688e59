package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrNotRoot is returned when the process is not running with root privileges.
	ErrNotRoot = zerr.New("pydep must be run as root")

	// ErrPipUnavailable is returned when pip is absent and could not be bootstrapped.
	ErrPipUnavailable = zerr.New("pip is not available and could not be bootstrapped")

	// ErrNoModules is returned when the configuration lists no modules to ensure.
	ErrNoModules = zerr.New("no modules configured")

	// ErrInvalidModuleName is returned when a configured module name is not a valid package identifier.
	ErrInvalidModuleName = zerr.New("invalid module name")

	// ErrModulesMissing is returned by a check run when at least one module does not import.
	ErrModulesMissing = zerr.New("one or more modules are missing")
)

// ExitError carries the exit code of a failed subprocess so callers can
// propagate it unmodified as the process exit status.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts a subprocess exit code from an error chain.
// The second return value reports whether one was found.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
