package nircmd

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by volume operations
var (
	// ErrToolMissing indicates the bundled tool binary is absent from the resource FS
	ErrToolMissing = errors.New("nircmd: tool resource missing")

	// ErrInvalidArgument indicates a caller input outside the operation's contract
	ErrInvalidArgument = errors.New("nircmd: invalid argument")

	// ErrNotReady indicates the client was closed or never initialized
	ErrNotReady = errors.New("nircmd: client not ready")

	// ErrUnparseable indicates the tool's captured output was not in the expected format
	ErrUnparseable = errors.New("nircmd: tool output unparseable")
)

// errInvalidf wraps ErrInvalidArgument with call-site detail
func errInvalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// errUnparseablef wraps ErrUnparseable with call-site detail
func errUnparseablef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnparseable, fmt.Sprintf(format, args...))
}

// ExitError represents a tool invocation that exited with a non-zero code
type ExitError struct {
	// Argv is the full command line that was attempted
	Argv []string
	// Code is the tool's exit code
	Code int
}

// Error returns a formatted error message
func (e *ExitError) Error() string {
	return fmt.Sprintf("nircmd: tool exited with code %d: %s", e.Code, strings.Join(e.Argv, " "))
}

// OpError represents an error from a volume operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	return fmt.Sprintf("nircmd %s: %v", e.Op.String(), e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}
