package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/delivery/http/validator"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/auth"
	"tracker/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// memUserRepo is an in-memory UserRepository covering the full contract,
// including the unique constraint on email and username.
type memUserRepo struct {
	mu     sync.Mutex
	users  []*entity.User
	nextID int64
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1}
}

func (r *memUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.taken(email, username), nil
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(user.Email, user.Username) {
		return repository.ErrDuplicateUser
	}

	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++

	copied := *user
	r.users = append(r.users, &copied)

	return nil
}

func (r *memUserRepo) taken(email, username string) bool {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true
		}
	}

	return false
}

// memProjectRepo is an in-memory ProjectRepository with owner-scoped access.
type memProjectRepo struct {
	mu       sync.Mutex
	projects map[int64]*entity.Project
	nextID   int64
}

var _ repository.ProjectRepository = (*memProjectRepo)(nil)

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[int64]*entity.Project), nextID: 1}
}

func (r *memProjectRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.Project
	for _, p := range r.projects {
		if p.UserID == ownerID {
			copied := *p
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })

	return owned, nil
}

func (r *memProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.UserID != ownerID {
		return nil, repository.ErrProjectNotFound
	}
	copied := *p

	return &copied, nil
}

func (r *memProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = r.nextID
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	r.nextID++

	copied := *project
	r.projects[project.ID] = &copied

	return nil
}

func (r *memProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.projects[project.ID]
	if !ok || stored.UserID != project.UserID {
		return repository.ErrProjectNotFound
	}

	stored.Name = project.Name
	stored.Description = project.Description
	stored.UpdatedAt = time.Now()
	project.UpdatedAt = stored.UpdatedAt

	return nil
}

func (r *memProjectRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.UserID != ownerID {
		return repository.ErrProjectNotFound
	}
	delete(r.projects, id)

	return nil
}

// newTestAPI assembles the full HTTP stack on in-memory repositories: real
// router, handlers, auth middleware, token and password services, and the
// error handler that owns the wire error shape.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	return newTestAPIWith(t, newMemUserRepo(), newMemProjectRepo())
}

// newTestAPIWith builds the same stack on the given repositories, so tests
// can substitute failing stores.
func newTestAPIWith(t *testing.T, userRepo repository.UserRepository, projectRepo repository.ProjectRepository) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{Secret: "test_secret_key_very_long_for_testing", ExpiresIn: time.Hour}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	projectUsecase := impl.NewProjectService(impl.ProjectServiceParams{
		ProjectRepo: projectRepo,
		Logger:      logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		ProjectHandler: handler.NewProjectHandler(projectUsecase, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenService),
	}).RegisterRoutes(e)

	return e
}

// doJSON performs a request against the test stack and decodes the response
// body into a generic map for assertions.
func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec.Code, decoded
}

// registerUser registers a fresh account and returns its token and user ID.
func registerUser(t *testing.T, e *echo.Echo, username, email string) (string, int64) {
	t.Helper()

	code, body := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, code)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	id, _ := user["id"].(float64)

	return token, int64(id)
}
