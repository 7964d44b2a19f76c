package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Business-rule failures. Messages are user-safe; handlers map each
// sentinel to a status code and never expose anything else.
var (
	ErrUserNotFound   = errors.New("User not found")
	ErrStoreNotFound  = errors.New("Store not found")
	ErrRatingNotFound = errors.New("Rating not found")

	ErrDuplicateEmail      = errors.New("Email already exists")
	ErrDuplicateStoreEmail = errors.New("Store email already exists")
	ErrDuplicateRating     = errors.New("Rating already exists for this store. Use update instead.")

	ErrNotRatingOwner  = errors.New("You can only update your own ratings")
	ErrNotStoreOwner   = errors.New("User is not a store owner")
	ErrOwnerHasNoStore = errors.New("Store owner has no associated store")

	ErrSamePassword       = errors.New("New password cannot be the same as current password")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidRole        = errors.New("Invalid role")
)

// ValidationError wraps the first violated field rule's message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// isDuplicateKey detects a unique-constraint violation from the store.
// gorm translates these to ErrDuplicatedKey when the driver supports it;
// the string match is a fallback for sqlite constraint errors that reach
// us untranslated.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
