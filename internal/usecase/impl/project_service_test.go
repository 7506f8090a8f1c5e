package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProjectService(projectRepo repository.ProjectRepository) usecase.ProjectUsecase {
	return NewProjectService(ProjectServiceParams{
		ProjectRepo: projectRepo,
		Logger:      discardLogger(),
	})
}

func TestGuardOwnership(t *testing.T) {
	assert.NoError(t, guardOwnership(5, 5))

	err := guardOwnership(5, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_List(t *testing.T) {
	projectRepo := &mockProjectRepo{
		listByOwnerFn: func(ctx context.Context, ownerID int64) ([]*entity.Project, error) {
			return []*entity.Project{
				{ID: 2, UserID: ownerID, Name: "newer"},
				{ID: 1, UserID: ownerID, Name: "older"},
			}, nil
		},
	}
	projectService := createTestProjectService(projectRepo)

	projects, err := projectService.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Name)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	projectService := createTestProjectService(&mockProjectRepo{})

	project, err := projectService.Get(context.Background(), 42, 5)
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Get_ForeignProjectLooksAbsent(t *testing.T) {
	// An owner-scoped lookup misses foreign projects entirely, so the error
	// for someone else's project is the same as for a nonexistent one.
	owned := &entity.Project{ID: 42, UserID: 5, Name: "mine"}
	projectRepo := &mockProjectRepo{
		findByIDAndOwnerFn: func(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
			if id == owned.ID && ownerID == owned.UserID {
				return owned, nil
			}

			return nil, repository.ErrProjectNotFound
		},
	}
	projectService := createTestProjectService(projectRepo)

	project, err := projectService.Get(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, "mine", project.Name)

	foreign, foreignErr := projectService.Get(context.Background(), 42, 6)
	absent, absentErr := projectService.Get(context.Background(), 999, 5)
	assert.Nil(t, foreign)
	assert.Nil(t, absent)
	assert.ErrorIs(t, foreignErr, domainerrors.ErrProjectNotFound)
	assert.ErrorIs(t, absentErr, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Create(t *testing.T) {
	var created *entity.Project
	projectRepo := &mockProjectRepo{
		createFn: func(ctx context.Context, project *entity.Project) error {
			project.ID = 11
			created = project

			return nil
		},
	}
	projectService := createTestProjectService(projectRepo)

	project, err := projectService.Create(context.Background(), &usecase.CreateProjectInput{
		OwnerID:     5,
		Name:        "Website Redesign",
		Description: "Refresh the marketing site",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), project.ID)
	assert.Equal(t, int64(5), project.UserID)

	require.NotNil(t, created)
	assert.Equal(t, "Website Redesign", created.Name)
}

func TestProjectService_Create_NameRequired(t *testing.T) {
	projectService := createTestProjectService(&mockProjectRepo{})

	project, err := projectService.Create(context.Background(), &usecase.CreateProjectInput{
		OwnerID:     5,
		Description: "no name given",
	})
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNameRequired)
}

func TestProjectService_Update(t *testing.T) {
	stored := &entity.Project{ID: 11, UserID: 5, Name: "old name", Description: "old description"}
	var updated *entity.Project
	projectRepo := &mockProjectRepo{
		findByIDAndOwnerFn: func(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
			if id == stored.ID && ownerID == stored.UserID {
				return stored, nil
			}

			return nil, repository.ErrProjectNotFound
		},
		updateFn: func(ctx context.Context, project *entity.Project) error {
			updated = project

			return nil
		},
	}
	projectService := createTestProjectService(projectRepo)

	project, err := projectService.Update(context.Background(), &usecase.UpdateProjectInput{
		ID:          11,
		OwnerID:     5,
		Name:        "new name",
		Description: "new description",
	})
	require.NoError(t, err)
	assert.Equal(t, "new name", project.Name)
	assert.Equal(t, "new description", project.Description)
	require.NotNil(t, updated)
	assert.Equal(t, int64(11), updated.ID)
}

func TestProjectService_Update_NotOwned(t *testing.T) {
	projectService := createTestProjectService(&mockProjectRepo{})

	project, err := projectService.Update(context.Background(), &usecase.UpdateProjectInput{
		ID:      11,
		OwnerID: 6,
		Name:    "whatever",
	})
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	var deletedID, deletedOwner int64
	projectRepo := &mockProjectRepo{
		deleteByIDAndOwnerFn: func(ctx context.Context, id, ownerID int64) error {
			deletedID, deletedOwner = id, ownerID

			return nil
		},
	}
	projectService := createTestProjectService(projectRepo)

	require.NoError(t, projectService.Delete(context.Background(), 11, 5))
	assert.Equal(t, int64(11), deletedID)
	assert.Equal(t, int64(5), deletedOwner)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	projectService := createTestProjectService(&mockProjectRepo{})

	err := projectService.Delete(context.Background(), 999, 5)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}
