// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the user's display name. It must be unique across all users
	// and is immutable after registration.
	Username string `gorm:"uniqueIndex;size:100;not null"`

	// Email is the user's email address used for login.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// DietaryPreferences holds the user's dietary preference tags
	// (e.g. "Vegetarian", "Gluten-Free").
	DietaryPreferences []string `gorm:"serializer:json"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
