package account

import "fmt"

// Error codes surfaced to the API boundary.
const (
	CodeValidation   = "validationError"
	CodeNotFound     = "notFound"
	CodeConflict     = "conflict"
	CodeUnauthorized = "unauthorized"
)

// AccountError carries a stable code alongside the message.
type AccountError struct {
	Code    string
	Message string
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the stable code for HTTP status mapping.
func (e *AccountError) ErrorCode() string { return e.Code }

func newError(code, format string, args ...interface{}) error {
	return &AccountError{Code: code, Message: fmt.Sprintf(format, args...)}
}
