package errors

import (
	"errors"
	"fmt"
)

// Common error types for the dashboard client
var (
	// Credential exchange errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredential  = errors.New("missing credential")

	// Authenticated request errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("data unavailable")

	// Persistence errors
	ErrStorage = errors.New("credential storage error")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
