package entity

import "time"

// Project is a record tracked on behalf of exactly one owning user.
// Every read or mutation of a project is scoped by both the project ID and
// the owner's user ID, so a project owned by someone else is indistinguishable
// from one that does not exist.
type Project struct {
	ID          int64     // Server-assigned identifier.
	UserID      int64     // The owning user's identifier.
	Name        string    // Required human-readable name.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
