package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface using GORM.
// Every query here filters by both project ID and owner ID, so a project
// belonging to another user behaves exactly like a missing row.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// ListByOwner retrieves all projects owned by the given user, newest first.
func (repo *projectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Project, error) {
	var projectMs []model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projectMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects by owner")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for i := range projectMs {
		projects = append(projects, toProjectDomain(&projectMs[i]))
	}

	return projects, nil
}

// FindByIDAndOwner retrieves a single project by ID, restricted to the given owner.
func (repo *projectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&projectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

// Create persists a new project and fills in the generated ID and timestamps.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		return errors.Wrap(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Update modifies a project's name and description, restricted to the owner.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ? AND user_id = ?", project.ID, project.UserID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).First(&projectM, project.ID).Error; err != nil {
		return errors.Wrap(err, "failed to reload project after update")
	}
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// DeleteByIDAndOwner removes a project by ID, restricted to the given owner.
// Zero affected rows means the project is absent or foreign; both report
// repository.ErrProjectNotFound.
func (repo *projectRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.ProjectModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
	}
}
