package generator

import "fmt"

// Error represents a failed generation.
type Error struct {
	// Kind is the generator variant that failed.
	Kind Kind
	// Message is the error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s generator: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s generator: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}
