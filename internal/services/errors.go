package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds returned by every service operation. Handlers map these to
// status codes; raw gorm errors never cross the service boundary.
var (
	// ErrNotFound covers both a nonexistent id and an id owned by another
	// user. The two cases must stay indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned only by RequireSelf, where the resource is
	// known to exist and distinguishing it leaks nothing.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidCredentials is deliberately ambiguous about whether the
	// email is unregistered or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports malformed or missing input; always recoverable by
// resubmission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// resolveErr maps a lookup failure to the uniform ErrNotFound.
func resolveErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("resolving entity: %w", err)
}

// writeErr translates persistence failures at the façade boundary.
// Constraint violations that slipped past application checks surface as
// caller errors, never as internal ones.
func writeErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return validationf("invalid field value")
	}
	return fmt.Errorf("persisting entity: %w", err)
}
