package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
)

// discardLogger keeps service logging out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserRepo is a hand-rolled UserRepository test double. Each method
// delegates to an optional hook so tests only stub what they exercise.
type mockUserRepo struct {
	findByIDFn                func(ctx context.Context, id int64) (*entity.User, error)
	findByEmailFn             func(ctx context.Context, email string) (*entity.User, error)
	existsByEmailOrUsernameFn func(ctx context.Context, email, username string) (bool, error)
	createFn                  func(ctx context.Context, user *entity.User) error
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, repository.ErrUserNotFound
	}

	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, repository.ErrUserNotFound
	}

	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	if m.existsByEmailOrUsernameFn == nil {
		return false, nil
	}

	return m.existsByEmailOrUsernameFn(ctx, email, username)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn == nil {
		user.ID = 1

		return nil
	}

	return m.createFn(ctx, user)
}

// mockProjectRepo is a hand-rolled ProjectRepository test double.
type mockProjectRepo struct {
	listByOwnerFn        func(ctx context.Context, ownerID int64) ([]*entity.Project, error)
	findByIDAndOwnerFn   func(ctx context.Context, id, ownerID int64) (*entity.Project, error)
	createFn             func(ctx context.Context, project *entity.Project) error
	updateFn             func(ctx context.Context, project *entity.Project) error
	deleteByIDAndOwnerFn func(ctx context.Context, id, ownerID int64) error
}

var _ repository.ProjectRepository = (*mockProjectRepo)(nil)

func (m *mockProjectRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Project, error) {
	if m.listByOwnerFn == nil {
		return nil, nil
	}

	return m.listByOwnerFn(ctx, ownerID)
}

func (m *mockProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
	if m.findByIDAndOwnerFn == nil {
		return nil, repository.ErrProjectNotFound
	}

	return m.findByIDAndOwnerFn(ctx, id, ownerID)
}

func (m *mockProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	if m.createFn == nil {
		project.ID = 1

		return nil
	}

	return m.createFn(ctx, project)
}

func (m *mockProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	if m.updateFn == nil {
		return nil
	}

	return m.updateFn(ctx, project)
}

func (m *mockProjectRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	if m.deleteByIDAndOwnerFn == nil {
		return repository.ErrProjectNotFound
	}

	return m.deleteByIDAndOwnerFn(ctx, id, ownerID)
}

// stubHasher makes hashing deterministic and cheap for service tests.
type stubHasher struct{}

var _ service.PasswordHasher = (*stubHasher)(nil)

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues predictable tokens tied to the user ID.
type stubTokenService struct {
	generateErr error
}

var _ service.TokenService = (*stubTokenService)(nil)

func (s *stubTokenService) GenerateToken(userID int64) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}

	return "token-for-" + strconv.FormatInt(userID, 10), nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return nil, nil
}
