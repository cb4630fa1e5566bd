package walker

import "fmt"

// PathError is a failure confined to one path of the walk.
type PathError struct {
	// Path is the absolute path being classified.
	Path string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// FieldError reports a field that could not be generated for a project.
type FieldError struct {
	Path  string
	Field string
	Cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %v", e.Path, e.Field, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Cause
}
