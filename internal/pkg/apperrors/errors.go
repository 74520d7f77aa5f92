package apperrors

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses at the
// controller boundary. Services wrap these with %w to add field context.
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("incorrect password")

	// Uniqueness errors
	ErrIdentifierExists = errors.New("identifier already registered")
)

// Is reports whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
