// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity unit of the front-desk system: one staff account that
// can sign in and operate the desk. Emails are stored normalized (lowercase,
// trimmed) and are unique at the store level.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // Normalized login email; unique across the store.
	Name         string    // The user's display name.
	PasswordHash string    // One-way bcrypt hash of the password; never a reversible encoding.
	Role         Role      // The user's role; defaults to RoleUser on registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
