// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUsernameAlreadyExists indicates that a user with the given username already exists.
	// This is returned during registration when the username is taken.
	ErrUsernameAlreadyExists = errors.New("Username already exists")

	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	// This is returned during registration when the email is taken.
	ErrEmailAlreadyExists = errors.New("Email already exists")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Unknown email and wrong password collapse into this single error so that
	// callers cannot tell which emails are registered.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)
