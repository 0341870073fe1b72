package contacts

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// Fetch error classes.
	EHTTP       = "http"
	ECONNECTION = "connection"
	ETIMEOUT    = "timeout"
	EREQUEST    = "request"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("contacts error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchErrorMessage returns a user-facing message for a failed fetch,
// worded according to the error class.
func FetchErrorMessage(err error) string {
	switch ErrorCode(err) {
	case "":
		return ""
	case EHTTP:
		return fmt.Sprintf("HTTP error: %s", ErrorMessage(err))
	case ECONNECTION:
		return "Could not connect to the server. Check the network connection and the URL."
	case ETIMEOUT:
		return "The server did not respond in time. Please try again later."
	case EREQUEST:
		return fmt.Sprintf("Request failed: %s", ErrorMessage(err))
	default:
		return fmt.Sprintf("Request failed: %v", err)
	}
}

// IsTransient reports whether a fetch error is worth retrying.
func IsTransient(err error) bool {
	switch ErrorCode(err) {
	case ECONNECTION, ETIMEOUT:
		return true
	}
	return false
}
