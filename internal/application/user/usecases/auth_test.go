package usecases

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"thali/internal/application/testutil"
	"thali/internal/domain/user"
	"thali/internal/infrastructure/auth"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

func TestRegister_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	enforcer := testutil.NewMockEnforcer()
	uc := NewRegisterUseCase(userRepo, enforcer, bcrypt.MinCost, logger.NewNop())

	u, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Asha",
		Email:    "Asha@Thali.Test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleCustomer, u.Role())
	// Email is normalized on the way in.
	assert.Equal(t, "asha@thali.test", u.Email())
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("wrong-password"))

	roles, err := enforcer.GetRolesForUser(strconv.FormatUint(uint64(u.ID()), 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"customer"}, roles)
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	uc := NewRegisterUseCase(userRepo, testutil.NewMockEnforcer(), bcrypt.MinCost, logger.NewNop())

	cmd := RegisterCommand{Name: "Asha", Email: "asha@thali.test", Password: "password123"}
	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegister_ShortPassword_Validation(t *testing.T) {
	uc := NewRegisterUseCase(testutil.NewMockUserRepository(), testutil.NewMockEnforcer(), bcrypt.MinCost, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Asha",
		Email:    "asha@thali.test",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLogin_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	u, err := user.NewUser("Asha", "asha@thali.test", "password123", user.RoleCustomer, bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.AddUser(u)

	jwtService := auth.NewJWTService("test-secret", 60)
	uc := NewLoginUseCase(userRepo, jwtService, logger.NewNop())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "asha@thali.test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	claims, err := jwtService.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), claims.UserID)
	assert.Equal(t, user.RoleCustomer, claims.Role)
}

func TestLogin_WrongPassword_SameErrorAsUnknownEmail(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	u, err := user.NewUser("Asha", "asha@thali.test", "password123", user.RoleCustomer, bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.AddUser(u)

	uc := NewLoginUseCase(userRepo, auth.NewJWTService("test-secret", 60), logger.NewNop())

	_, wrongPass := uc.Execute(context.Background(), LoginCommand{Email: "asha@thali.test", Password: "nope-nope"})
	_, unknown := uc.Execute(context.Background(), LoginCommand{Email: "ghost@thali.test", Password: "password123"})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(wrongPass).Type)
}
