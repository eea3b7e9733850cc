package store

import "errors"

var (
	// Event errors
	// ErrEventNotFound is returned when an event is not found by ID
	ErrEventNotFound = errors.New("event not found")

	// Account errors
	// ErrDuplicateEmail is returned when an account with the email already exists
	ErrDuplicateEmail = errors.New("an account with that email already exists")
	// ErrAccountNotFound is returned when no account matches the email
	ErrAccountNotFound = errors.New("no account found with that email")
	// ErrWrongPassword is returned on a failed login password check
	ErrWrongPassword = errors.New("incorrect password")
	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidRTUEmail is returned when the email fails the RTU format rule
	ErrInvalidRTUEmail = errors.New("invalid RTU email")
)

// ValidationError carries the inline, human-readable message shown next to
// the input surface. It is always returned, never panicked.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
