// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is an opaque UUID string assigned at registration.
	ID string `gorm:"primaryKey;size:36"`

	// Email must be unique across all users; the storage layer enforces it.
	Email string `gorm:"uniqueIndex;not null"`

	// Name is the display name.
	Name string `gorm:"not null"`

	// Picture is an optional avatar URL, empty when unset.
	Picture string `gorm:"not null;default:''"`

	// PasswordHash is the bcrypt hash. Plaintext passwords are never stored.
	PasswordHash string `gorm:"not null"`

	// CreatedAt is the registration instant (UTC).
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
