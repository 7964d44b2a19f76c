// Package validation holds the field-level business rules for users,
// stores and ratings. Validators are pure functions: no I/O, no state,
// first violated rule wins.
package validation

import (
	"regexp"
	"strings"
)

const (
	NameMinLength     = 20
	NameMaxLength     = 60
	PasswordMinLength = 8
	PasswordMaxLength = 16
	AddressMaxLength  = 400
	RatingMin         = 1
	RatingMax         = 5
)

// specialChars is the accepted special-character set for passwords.
const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// emailPattern is deliberately permissive: something@something.something
// with no whitespace and no extra @ signs. Full RFC validation is not a goal.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a single validator. Error is set only when
// Valid is false and carries the first violated rule's message.
type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// Name requires 20-60 characters after trimming surrounding whitespace.
func Name(name string) Result {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < NameMinLength {
		return fail("Name must be at least 20 characters long")
	}
	if len(trimmed) > NameMaxLength {
		return fail("Name must not exceed 60 characters")
	}
	return ok()
}

// Email checks the permissive local@domain.tld shape.
func Email(email string) Result {
	if !emailPattern.MatchString(email) {
		return fail("Invalid email format")
	}
	return ok()
}

// Password requires 8-16 characters (untrimmed), at least one uppercase
// letter and at least one character from the special set.
func Password(password string) Result {
	if len(password) < PasswordMinLength {
		return fail("Password must be at least 8 characters long")
	}
	if len(password) > PasswordMaxLength {
		return fail("Password must not exceed 16 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return fail("Password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, specialChars) {
		return fail("Password must contain at least one special character")
	}
	return ok()
}

// Address requires a non-empty trimmed value of at most 400 characters.
func Address(address string) Result {
	trimmed := strings.TrimSpace(address)
	if len(trimmed) == 0 {
		return fail("Address is required")
	}
	if len(trimmed) > AddressMaxLength {
		return fail("Address must not exceed 400 characters")
	}
	return ok()
}

// Rating requires an integral value between 1 and 5 inclusive. The input
// is a float64 because JSON numbers arrive untyped; 4.5 must be rejected.
func Rating(value float64) Result {
	if value != float64(int(value)) {
		return fail("Rating must be an integer")
	}
	if value < RatingMin || value > RatingMax {
		return fail("Rating must be between 1 and 5")
	}
	return ok()
}
