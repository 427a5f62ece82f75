package contacts

import "errors"

// Sentinel reasons carried by ValidationError, matched with errors.Is
var (
	ErrEmptyName    = errors.New("empty name")
	ErrInvalidPhone = errors.New("invalid phone")
	ErrInvalidDate  = errors.New("invalid date")
)

// ValidationError reports a field value rejected at construction or mutation.
// Error() is the bare reason ("empty name", "invalid phone", "invalid date").
type ValidationError struct {
	Field  string // name, phone, birthday
	Value  string // rejected input
	reason error
	cause  error
}

func newValidationError(field, value string, reason, cause error) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		reason: reason,
		cause:  cause,
	}
}

// Error implements error
func (e *ValidationError) Error() string {
	return e.reason.Error()
}

// Unwrap exposes the sentinel reason and, for dates, the parse failure
func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.reason}
	}
	return []error{e.reason, e.cause}
}
