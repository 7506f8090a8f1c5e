// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system, representing a unique account.
// Both Username and Email are unique across all users; Email doubles as the
// login key. PasswordHash is opaque and must never leave the subsystem.
type User struct {
	ID           int64     // Server-assigned identifier, immutable once created.
	Username     string    // The user's unique display name.
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
