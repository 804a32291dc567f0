// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role is the access level of a user within their organisation.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash; plaintext is never stored.
	Password string `gorm:"size:255;not null"`

	// CompanyName is the organisation the user analyses competitors for.
	CompanyName string `gorm:"size:255"`

	// Role defaults to viewer.
	Role Role `gorm:"size:16;not null;default:viewer"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
