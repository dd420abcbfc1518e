package mappers

import (
	"fmt"

	"thali/internal/domain/user"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		user.Role(model.Role),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}
