// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when an insert collides with the unique
// constraints on email or username. The store-level constraint is the source
// of truth; a pre-check may pass and the insert still fail with this error.
var ErrDuplicateUser = errors.New("email or username already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user already holds the
	// given email or username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Create persists a new user entity to the storage and fills in the
	// server-assigned ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
