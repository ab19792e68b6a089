// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by its phone number.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Phone     string    `json:"phone"`      // Login identifier, normalized to digits with an optional leading '+'.
	Name      string    `json:"name"`       // Display name, empty until the user fills in the profile.
	Email     string    `json:"email"`      // Optional contact email.
	Role      Role      `json:"role"`       // Single role held by the account.
	IsBlocked bool      `json:"is_blocked"` // Blocked users cannot log in or refresh sessions.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Roles returns the user's role as a Roles slice for token claims.
func (u *User) Roles() Roles {
	return Roles{u.Role}
}

// UserFilter narrows the back-office user listing.
type UserFilter struct {
	Role      Role   // Empty matches every role.
	IsBlocked *bool  // Nil matches both.
	Phone     string // Prefix match on the phone number.
	Page      Page
}
