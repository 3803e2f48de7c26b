package errors

import "fmt"

// HTTPError is an error that knows its HTTP status and response code.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError builds an HTTPError whose response code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

// NewHTTPErrorWithCode builds an HTTPError with a service-specific code.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: message}
}
