package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// CreateProjectInput defines the data required to create a project.
type CreateProjectInput struct {
	OwnerID     int64
	Name        string
	Description string
}

// UpdateProjectInput defines the data required to update a project.
type UpdateProjectInput struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
}

// ProjectUsecase defines the interface for project-related business
// operations. Every operation takes the verified requester's user ID and
// never exposes projects owned by anyone else.
type ProjectUsecase interface {
	List(ctx context.Context, ownerID int64) ([]*entity.Project, error)
	Get(ctx context.Context, id, ownerID int64) (*entity.Project, error)
	Create(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)
	Update(ctx context.Context, input *UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
