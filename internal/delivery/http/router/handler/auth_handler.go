// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userView is the public projection of a user. The password hash has no
// field here, so it can never leak through serialization.
type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type profileView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, authResponse{
		Token: output.Token,
		User:  toUserView(output.User),
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}
	// Absent credentials can never authenticate; they fail exactly like
	// wrong ones so the response stays uniform.
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Token: output.Token,
		User:  toUserView(output.User),
	})
}

// Profile handles the request to get the current user's profile.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]profileView{
		"user": {
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

// requesterID returns the verified user ID the auth middleware attached.
// A missing value means the route was wired without the middleware; treat it
// as an absent credential rather than assuming any identity.
func requesterID(c echo.Context) (int64, error) {
	if id, ok := c.Get("userID").(int64); ok {
		return id, nil
	}

	return 0, domainerrors.ErrTokenRequired
}
