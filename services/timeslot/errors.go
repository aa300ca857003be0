package timeslot

import "fmt"

// Error codes surfaced to the API boundary.
const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeSlotBooked = "slotBooked"
)

// SlotError carries a stable code alongside the message so handlers can map
// it to an HTTP status.
type SlotError struct {
	Code    string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the stable code for HTTP status mapping.
func (e *SlotError) ErrorCode() string { return e.Code }

func newValidationError(format string, args ...interface{}) error {
	return &SlotError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func newNotFoundError(format string, args ...interface{}) error {
	return &SlotError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func newForbiddenError(format string, args ...interface{}) error {
	return &SlotError{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

func newConflictError(format string, args ...interface{}) error {
	return &SlotError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}
