package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert would violate the unique
// constraint on the admins.email column.
var ErrDuplicateEmail = errors.New("email already registered")

// isUniqueViolation reports whether err is a unique-constraint violation.
// Each supported driver phrases the error differently, so match on the
// common substrings the way the engines emit them.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
