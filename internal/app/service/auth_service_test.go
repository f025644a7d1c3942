package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/common"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/model"
)

func newAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := security.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewAuthService(repo, tokens), repo
}

func registerJane(t *testing.T, svc *AuthService) {
	t.Helper()
	err := svc.Register(context.Background(), RegisterRequest{
		Fullname:    "Jane",
		Email:       "jane@x.com",
		PhoneNumber: "555",
		Password:    "pw123",
		Role:        model.RoleStudent,
	})
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	t.Run("succeeds with an unused email", func(t *testing.T) {
		svc, repo := newAuthService()
		registerJane(t, svc)

		stored, err := repo.FindByEmail(context.Background(), "jane@x.com")
		require.NoError(t, err)
		assert.Equal(t, model.RoleStudent, stored.Role)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotEqual(t, "pw123", stored.HashedPassword)
	})

	t.Run("second registration with the same email conflicts", func(t *testing.T) {
		svc, _ := newAuthService()
		registerJane(t, svc)

		err := svc.Register(context.Background(), RegisterRequest{
			Fullname:    "Jane Again",
			Email:       "jane@x.com",
			PhoneNumber: "556",
			Password:    "pw456",
			Role:        model.RoleRecruiter,
		})
		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("missing field fails validation", func(t *testing.T) {
		svc, _ := newAuthService()
		err := svc.Register(context.Background(), RegisterRequest{
			Fullname: "Jane",
			Email:    "jane@x.com",
			Password: "pw123",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		svc, _ := newAuthService()
		err := svc.Register(context.Background(), RegisterRequest{
			Fullname:    "Jane",
			Email:       "jane@x.com",
			PhoneNumber: "555",
			Password:    "pw123",
			Role:        "admin",
		})
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	t.Run("correct password and role succeeds", func(t *testing.T) {
		svc, _ := newAuthService()
		registerJane(t, svc)

		result, err := svc.Login(context.Background(), LoginRequest{
			Email: "jane@x.com", Password: "pw123", Role: model.RoleStudent,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "Jane", result.User.Fullname)
		assert.Equal(t, model.RoleStudent, result.User.Role)
		assert.Empty(t, result.User.HashedPassword, "public view must not carry the hash")
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc, _ := newAuthService()
		registerJane(t, svc)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email: "jane@x.com", Password: "wrong", Role: model.RoleStudent,
		})
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("correct password but wrong role is a role mismatch", func(t *testing.T) {
		svc, _ := newAuthService()
		registerJane(t, svc)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email: "jane@x.com", Password: "pw123", Role: model.RoleRecruiter,
		})
		assert.ErrorIs(t, err, common.ErrRoleMismatch)
	})

	t.Run("wrong password and wrong role reports the role mismatch", func(t *testing.T) {
		svc, _ := newAuthService()
		registerJane(t, svc)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email: "jane@x.com", Password: "wrong", Role: model.RoleRecruiter,
		})
		assert.ErrorIs(t, err, common.ErrRoleMismatch)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		svc, _ := newAuthService()
		_, err := svc.Login(context.Background(), LoginRequest{
			Email: "nobody@x.com", Password: "pw123", Role: model.RoleStudent,
		})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("missing field fails validation", func(t *testing.T) {
		svc, _ := newAuthService()
		_, err := svc.Login(context.Background(), LoginRequest{Email: "jane@x.com"})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("empty secret surfaces as config error", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, security.NewTokenManager(nil, time.Hour))
		registerJane(t, svc)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email: "jane@x.com", Password: "pw123", Role: model.RoleStudent,
		})
		assert.ErrorIs(t, err, common.ErrConfig)
	})
}
