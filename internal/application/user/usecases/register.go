package usecases

import (
	"context"
	"fmt"
	"strconv"

	"thali/internal/domain/user"
	"thali/internal/infrastructure/permission"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// RegisterCommand creates an account. Role defaults to customer; handlers
// only pass other roles on admin-authenticated routes.
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
}

// RegisterUseCase creates a user and grants its casbin role.
type RegisterUseCase struct {
	userRepo   user.Repository
	enforcer   permission.PermissionEnforcer
	bcryptCost int
	logger     logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	enforcer permission.PermissionEnforcer,
	bcryptCost int,
	log logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:   userRepo,
		enforcer:   enforcer,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	role := cmd.Role
	if role == "" {
		role = user.RoleCustomer
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, cmd.Password, role, uc.bcryptCost)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, u.Email())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := uc.enforcer.AddRoleForUser(strconv.FormatUint(uint64(u.ID()), 10), role.String()); err != nil {
		uc.logger.Errorw("failed to grant role", "error", err, "user_id", u.ID(), "role", role)
		return nil, fmt.Errorf("failed to grant role: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", u.Email(), "role", role)
	return u, nil
}
