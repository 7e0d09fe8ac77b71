package accounts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmail is returned when the signup email fails the
	// format check.
	ErrInvalidEmail = errors.New("email is not valid")

	// ErrPasswordMismatch is returned when the confirmation value does
	// not equal the password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when the password fails the strength
	// policy.
	ErrWeakPassword = errors.New("password is not strong enough")

	// ErrEmailTaken is returned when a signup collides with an existing
	// account's email, whether caught by the pre-check or by the store's
	// unique constraint.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned on login when the email is
	// unknown or the password does not match. Callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MissingFieldError reports a required input that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must be filled", e.Field)
}

// StoreError wraps a failure from the account store. The cause is
// preserved for the caller to inspect; the core never retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("account store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
