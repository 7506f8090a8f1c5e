package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

type projectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type projectView struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type projectResponse struct {
	Message string      `json:"message,omitempty"`
	Project projectView `json:"project"`
}

func toProjectView(p *entity.Project) projectView {
	return projectView{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// List returns all projects owned by the requester, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	projects, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toProjectView(p))
	}

	return c.JSON(http.StatusOK, map[string][]projectView{"projects": views})
}

// Get returns a single project owned by the requester.
func (h *ProjectHandler) Get(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := projectID(c)
	if err != nil {
		return err
	}

	project, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]projectView{"project": toProjectView(project)})
}

// Create persists a new project owned by the requester.
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrProjectNameRequired
	}

	project, err := h.uc.Create(c.Request().Context(), &usecase.CreateProjectInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, projectResponse{
		Message: "Project created successfully",
		Project: toProjectView(project),
	})
}

// Update modifies an existing project owned by the requester.
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := projectID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}
	// An update may not clear the name; the same rule applies as on create.
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrProjectNameRequired
	}

	project, err := h.uc.Update(c.Request().Context(), &usecase.UpdateProjectInput{
		ID:          id,
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, projectResponse{
		Message: "Project updated successfully",
		Project: toProjectView(project),
	})
}

// Delete removes a project owned by the requester.
func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := projectID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// projectID parses the :id route parameter. A non-numeric ID can never match
// a row, so it reports the same not-found outcome as an unknown ID.
func projectID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrProjectNotFound
	}

	return id, nil
}
