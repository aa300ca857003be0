package booking

import "fmt"

// Guard error codes surfaced to the API boundary.
const (
	CodeCapacityExceeded = "capacityExceeded"
	CodeSlotInactive     = "slotInactive"
	CodeSlotExpired      = "slotExpired"
	CodeNotBooked        = "notBooked"
	CodeNotFound         = "notFound"
	CodeForbidden        = "forbidden"
	CodeValidation       = "validationError"
	CodeConflict         = "conflict"
)

// GuardError is a booking-guard rejection with a stable code.
type GuardError struct {
	Code    string
	Message string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the stable code for HTTP status mapping.
func (e *GuardError) ErrorCode() string { return e.Code }

func newGuardError(code, format string, args ...interface{}) error {
	return &GuardError{Code: code, Message: fmt.Sprintf(format, args...)}
}
