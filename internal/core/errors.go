package core

import "errors"

// Error kinds surfaced by the stores. The HTTP layer maps each kind to a
// status code; the message is what ends up in the JSON error body, so these
// carry user-facing text rather than wrapped internals.
type (
	// ValidationError reports malformed or missing input.
	ValidationError string

	// ConflictError reports a uniqueness violation.
	ConflictError string

	// NotFoundError reports a referenced entity that does not exist.
	NotFoundError string
)

func (e ValidationError) Error() string { return string(e) }
func (e ConflictError) Error() string   { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c ConflictError
	return errors.As(err, &c)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var n NotFoundError
	return errors.As(err, &n)
}
