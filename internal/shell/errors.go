package shell

import "fmt"

// ExecError reports a process that could not be started.
type ExecError struct {
	// Command is the invocation that failed.
	Command Command
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Command, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ExecError) Unwrap() error {
	return e.Cause
}
