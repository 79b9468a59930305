// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the address the user signs in with. Stored case-sensitively
	// and unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// HashedPassword is the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted.
	HashedPassword string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
