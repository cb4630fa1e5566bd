package template

import "fmt"

// FuncErrorType represents the type of template function error.
type FuncErrorType int

const (
	// UnknownFunction indicates a $(...) call to an undefined function.
	UnknownFunction FuncErrorType = iota
	// TooFewArguments indicates a call missing required arguments.
	TooFewArguments
	// InvalidArgument indicates an argument that could not be interpreted.
	InvalidArgument
	// IndexOutOfRange indicates a segment index outside the value.
	IndexOutOfRange
)

// FuncError represents a failed built-in function call.
type FuncError struct {
	// Type is the error type.
	Type FuncErrorType
	// Func is the function name, empty if missing.
	Func string
	// Message is the error message.
	Message string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *FuncError) Error() string {
	msg := e.Message
	if e.Func != "" {
		msg = e.Func + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *FuncError) Unwrap() error {
	return e.Cause
}

func newFuncError(typ FuncErrorType, fn, message string) *FuncError {
	return &FuncError{
		Type:    typ,
		Func:    fn,
		Message: message,
	}
}
