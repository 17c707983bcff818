package meshmcp

import (
	"errors"
	"fmt"
)

// Application error codes. These map machine-readable codes to the error
// kinds surfaced to callers: EINVALID becomes InvalidInput, ENOTFOUND
// becomes NotFound, and EEXTRACTION becomes ExtractionFailed.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EEXTRACTION  = "extraction_failed"
	EUNAVAILABLE = "unavailable"
	EINTERNAL    = "internal"
)

// Error represents an application-specific error.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("meshmcp error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
