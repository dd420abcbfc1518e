package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"thali/internal/domain/user"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(database *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		r.logger.Errorw("failed to convert user to model", "error", err)
		return fmt.Errorf("failed to convert user to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		r.logger.Errorw("failed to convert user to model", "error", err)
		return fmt.Errorf("failed to convert user to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err, "email", email)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var modelList []*models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("role = ?", role.String()).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list users by role", "error", err, "role", role.String())
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
