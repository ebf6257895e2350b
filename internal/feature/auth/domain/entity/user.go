// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account. The username is the identity every
// portfolio operation keys on.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// UserName is the login name. It must be unique across all users.
	UserName string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash for the user.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
