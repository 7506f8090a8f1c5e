package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrProjectNotFound is returned both when no project has the given ID and
// when the project exists but belongs to a different owner. Callers must not
// be able to tell the two cases apart.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
// Every lookup and mutation is scoped by the owner's user ID.
type ProjectRepository interface {
	// ListByOwner retrieves all projects owned by the given user,
	// newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Project, error)

	// FindByIDAndOwner retrieves a single project by ID, restricted to the
	// given owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Project, error)

	// Create persists a new project and fills in the server-assigned ID and
	// timestamps.
	Create(ctx context.Context, project *entity.Project) error

	// Update modifies an existing project's name and description, restricted
	// to the given owner.
	Update(ctx context.Context, project *entity.Project) error

	// DeleteByIDAndOwner removes a project by ID, restricted to the given
	// owner.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
}
