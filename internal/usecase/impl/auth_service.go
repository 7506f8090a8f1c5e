// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minPasswordLength is the only password policy the service enforces.
const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates validation, uniqueness check, hashing, persistence,
// and token issuance for a new account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("registration input incomplete")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort.WrapMessage("password below minimum length")
	}

	taken, err := srv.userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user uniqueness")
	}
	if taken {
		srv.log(ctx).Warn("Registration rejected, identity taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserExists.WrapMessage("email or username taken")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique constraint decides, and that loser sees the same conflict.
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.log(ctx).Warn("Registration lost uniqueness race", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserExists.WrapMessage("unique constraint violated on insert")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Int64("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password fail with the same error so account existence is never
// revealed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Profile returns the public fields of the authenticated user.
func (srv *authService) Profile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup for unknown user")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}
