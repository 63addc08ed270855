package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving an existing code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ConfigInvalid marks a configuration validation failure
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// GenerationFailed marks a dataset generation failure. Terminal for the
// session: no dataset is available and the pipeline must not run.
func GenerationFailed(cause error) *AppError {
	return &AppError{
		Code:    CodeGenerationFailed,
		Message: "sample data generation failed",
		Cause:   cause,
	}
}

// InvalidInput marks a rejected caller-supplied value
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// InternalError marks an unexpected internal failure
func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
