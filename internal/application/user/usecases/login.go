package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/user"
	"thali/internal/infrastructure/auth"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// LoginCommand authenticates by email and password.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the issued token and its lifetime.
type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

// LoginUseCase verifies credentials and issues an access token. Unknown
// email and wrong password return the same error so the endpoint does not
// leak which emails exist.
type LoginUseCase struct {
	userRepo   user.Repository
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, jwtService *auth.JWTService, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil || !u.CheckPassword(cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.jwtService.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{
		User:        u,
		AccessToken: token,
		ExpiresIn:   uc.jwtService.ExpiresInSeconds(),
	}, nil
}
