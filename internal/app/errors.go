package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// RootExpandFailed indicates the root generator failed.
	RootExpandFailed AppErrorType = iota
	// AddressParseFailed indicates an address could not be parsed.
	AddressParseFailed
	// OverloadResolveFailed indicates an overload pattern failed to compile.
	OverloadResolveFailed
	// PathResolveFailed indicates the resolve path generator failed.
	PathResolveFailed
	// BehaviorFailed indicates a behavior could not be run.
	BehaviorFailed
	// ListFailed indicates the project listing could not run.
	ListFailed
	// ExternalFailed indicates an external subcommand could not be run.
	ExternalFailed
	// EnvFileLoadFailed indicates the configured env file could not be read.
	EnvFileLoadFailed
	// ConfigInitFailed indicates a starter configuration could not be written.
	ConfigInitFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}
