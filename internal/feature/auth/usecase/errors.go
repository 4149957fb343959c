// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned by repositories when a unique constraint on
	// username or email is violated. The usecase layer resolves which column
	// conflicted.
	ErrDuplicateUser = errors.New("duplicate user")
)
