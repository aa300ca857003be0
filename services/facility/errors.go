package facility

import "fmt"

// Error codes surfaced to the API boundary.
const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
)

// FacilityError carries a stable code alongside the message.
type FacilityError struct {
	Code    string
	Message string
}

func (e *FacilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the stable code for HTTP status mapping.
func (e *FacilityError) ErrorCode() string { return e.Code }

func newError(code, format string, args ...interface{}) error {
	return &FacilityError{Code: code, Message: fmt.Sprintf(format, args...)}
}
