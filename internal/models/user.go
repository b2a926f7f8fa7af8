// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the admin.
type Role string

const (
	// RoleAdmin may edit site options.
	RoleAdmin Role = "admin"
	// RoleEditor may sign in but not change site options.
	RoleEditor Role = "editor"
)

// User is an admin account. Every account signs in with a password and a
// TOTP code.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	TOTPSecret   *string   `json:"-"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanManageOptions reports whether the user may open the settings page.
func (u *User) CanManageOptions() bool {
	return u.Role == RoleAdmin
}

// Needs2FASetup returns true until the user has confirmed a TOTP code once.
func (u *User) Needs2FASetup() bool {
	return !u.TOTPEnabled
}
