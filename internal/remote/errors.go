package remote

import "fmt"

// ParseError reports an address that could not be parsed.
type ParseError struct {
	// Address is the raw input.
	Address string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot parse address '%s': %s (caused by: %v)", e.Address, e.Message, e.Cause)
	}
	return fmt.Sprintf("cannot parse address '%s': %s", e.Address, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(address, message string, cause error) *ParseError {
	return &ParseError{
		Address: address,
		Message: message,
		Cause:   cause,
	}
}
