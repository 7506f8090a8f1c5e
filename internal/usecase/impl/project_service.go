package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// guardOwnership permits access only when the resource owner and the verified
// requester are the same user. A denial surfaces as ErrProjectNotFound, never
// as a distinct forbidden outcome, so foreign projects stay indistinguishable
// from absent ones.
func guardOwnership(ownerID, requesterID int64) error {
	if ownerID != requesterID {
		return domainerrors.ErrProjectNotFound.WrapMessage("requester is not the owner")
	}

	return nil
}

// List returns all projects owned by the requester, newest first.
func (srv *projectService) List(ctx context.Context, ownerID int64) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// Get returns a single project, scoped to the requester.
func (srv *projectService) Get(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound.WrapMessage("project absent or not owned by requester")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	if err := guardOwnership(project.UserID, ownerID); err != nil {
		return nil, err
	}

	return project, nil
}

// Create persists a new project owned by the requester.
func (srv *projectService) Create(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrProjectNameRequired.WrapMessage("create without name")
	}

	project := &entity.Project{
		UserID:      input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Debug("Project created", slog.Int64("projectID", project.ID), slog.Int64("ownerID", input.OwnerID))

	return project, nil
}

// Update modifies an existing project after confirming it exists for the
// requester.
func (srv *projectService) Update(ctx context.Context, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	existing, err := srv.projectRepo.FindByIDAndOwner(ctx, input.ID, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound.WrapMessage("update of absent or foreign project")
		}

		return nil, errors.Wrap(err, "failed to find project for update")
	}

	if err := guardOwnership(existing.UserID, input.OwnerID); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description

	if err := srv.projectRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	srv.log(ctx).Debug("Project updated", slog.Int64("projectID", existing.ID))

	return existing, nil
}

// Delete removes a project, scoped to the requester.
func (srv *projectService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := srv.projectRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound.WrapMessage("delete of absent or foreign project")
		}

		return errors.Wrap(err, "failed to delete project")
	}

	srv.log(ctx).Debug("Project deleted", slog.Int64("projectID", id))

	return nil
}
