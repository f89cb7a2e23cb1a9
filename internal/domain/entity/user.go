// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries the credential hash and
// the account flags the authentication layer gates on.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Display name, not unique.
	Email        string    // Primary contact and login identifier, unique.
	Phone        string    // Optional contact phone, unique when set.
	Address      string    // Free-form default delivery address.
	PasswordHash string    // bcrypt hash of the user's password.
	Role         Role      // customer, courier or admin.
	IsActive     bool      // Inactive accounts are rejected by the auth middleware.
	IsVerified   bool      // Set once the confirmation email link is followed.
	IsSuperuser  bool      // The first account registered in an empty system.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
